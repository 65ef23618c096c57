package receiving_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Recepcion-api/internal/application/receiving"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
	"github.com/jhoicas/Recepcion-api/pkg/ident"
	"github.com/jhoicas/Recepcion-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test en memoria.
//
// memStore simula la base de datos: los repositorios fake leen y escriben
// sobre él, y fakeTxRunner toma un snapshot antes de ejecutar fn y lo
// restaura si fn falla, reproduciendo la semántica de rollback de la
// transacción real de pgx.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	asns         []*entity.ASN
	asnLines     []*entity.ASNLineItem
	receipts     []*entity.Receipt
	receiptLines []*entity.ReceiptLineItem
	tasks        []*entity.PutawayTask
	bins         []*entity.BinLocation
}

func newMemStore() *memStore {
	return &memStore{}
}

func cloneSlice[T any](in []*T) []*T {
	out := make([]*T, len(in))
	for i, v := range in {
		c := *v
		out[i] = &c
	}
	return out
}

func (s *memStore) snapshot() *memStore {
	return &memStore{
		asns:         cloneSlice(s.asns),
		asnLines:     cloneSlice(s.asnLines),
		receipts:     cloneSlice(s.receipts),
		receiptLines: cloneSlice(s.receiptLines),
		tasks:        cloneSlice(s.tasks),
		bins:         cloneSlice(s.bins),
	}
}

func (s *memStore) restore(snap *memStore) {
	*s = *snap
}

// ── ASNRepository ─────────────────────────────────────────────────────────────

type fakeASNRepo struct{ s *memStore }

func (r *fakeASNRepo) Create(asn *entity.ASN) error {
	c := *asn
	c.LineItems = nil
	r.s.asns = append(r.s.asns, &c)
	return nil
}

func (r *fakeASNRepo) CreateLineItem(line *entity.ASNLineItem) error {
	c := *line
	r.s.asnLines = append(r.s.asnLines, &c)
	return nil
}

func (r *fakeASNRepo) GetByID(id string) (*entity.ASN, error) {
	for _, a := range r.s.asns {
		if a.ID == id {
			c := *a
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeASNRepo) ListLineItems(asnID string) ([]*entity.ASNLineItem, error) {
	var out []*entity.ASNLineItem
	for _, l := range r.s.asnLines {
		if l.ASNID == asnID {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeASNRepo) List(filters repository.ASNFilters, limit, offset int) ([]*entity.ASN, error) {
	var out []*entity.ASN
	for _, a := range r.s.asns {
		if filters.Status != "" && a.Status != filters.Status {
			continue
		}
		if filters.SupplierID != "" && a.SupplierID != filters.SupplierID {
			continue
		}
		c := *a
		out = append(out, &c)
	}
	if offset > len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeASNRepo) Count(filters repository.ASNFilters) (int, error) {
	list, _ := r.List(filters, len(r.s.asns), 0)
	return len(list), nil
}

func (r *fakeASNRepo) UpdateStatus(id, status string, actualArrival *time.Time) error {
	for _, a := range r.s.asns {
		if a.ID == id {
			a.Status = status
			if actualArrival != nil {
				a.ActualArrivalDate = actualArrival
			}
			return nil
		}
	}
	return nil
}

func (r *fakeASNRepo) GetLineItemForUpdate(id string) (*entity.ASNLineItem, error) {
	for _, l := range r.s.asnLines {
		if l.ID == id {
			c := *l
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeASNRepo) UpdateLineItemReceiving(line *entity.ASNLineItem) error {
	for i, l := range r.s.asnLines {
		if l.ID == line.ID {
			c := *line
			r.s.asnLines[i] = &c
			return nil
		}
	}
	return nil
}

// ── ReceiptRepository ─────────────────────────────────────────────────────────

type fakeReceiptRepo struct{ s *memStore }

func (r *fakeReceiptRepo) Create(receipt *entity.Receipt) error {
	c := *receipt
	c.LineItems = nil
	r.s.receipts = append(r.s.receipts, &c)
	return nil
}

func (r *fakeReceiptRepo) CreateLineItem(line *entity.ReceiptLineItem) error {
	c := *line
	r.s.receiptLines = append(r.s.receiptLines, &c)
	return nil
}

func (r *fakeReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	for _, rc := range r.s.receipts {
		if rc.ID == id {
			c := *rc
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeReceiptRepo) GetLineByID(lineID string) (*entity.ReceiptLineItem, error) {
	for _, l := range r.s.receiptLines {
		if l.ID == lineID {
			c := *l
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeReceiptRepo) ListLineItems(receiptID string) ([]*entity.ReceiptLineItem, error) {
	var out []*entity.ReceiptLineItem
	for _, l := range r.s.receiptLines {
		if l.ReceiptID == receiptID {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeReceiptRepo) List(filters repository.ReceiptFilters, limit, offset int) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, rc := range r.s.receipts {
		if filters.Status != "" && rc.Status != filters.Status {
			continue
		}
		if filters.ASNID != "" && (rc.ASNID == nil || *rc.ASNID != filters.ASNID) {
			continue
		}
		if filters.ReceiptType != "" && rc.ReceiptType != filters.ReceiptType {
			continue
		}
		c := *rc
		out = append(out, &c)
	}
	if offset > len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeReceiptRepo) Count(filters repository.ReceiptFilters) (int, error) {
	list, _ := r.List(filters, len(r.s.receipts), 0)
	return len(list), nil
}

func (r *fakeReceiptRepo) UpdateStatus(id, status string) error {
	for _, rc := range r.s.receipts {
		if rc.ID == id {
			rc.Status = status
			return nil
		}
	}
	return nil
}

func (r *fakeReceiptRepo) UpdateLinePutawayStatus(lineID, status string) error {
	for _, l := range r.s.receiptLines {
		if l.ID == lineID {
			l.PutawayStatus = status
			return nil
		}
	}
	return nil
}

func (r *fakeReceiptRepo) CountLinesPutawayPending(receiptID string) (int, error) {
	n := 0
	for _, l := range r.s.receiptLines {
		if l.ReceiptID == receiptID && l.PutawayStatus != entity.LinePutawayCompleted {
			n++
		}
	}
	return n, nil
}

// ── PutawayTaskRepository ─────────────────────────────────────────────────────

type fakeTaskRepo struct{ s *memStore }

func (r *fakeTaskRepo) Create(task *entity.PutawayTask) error {
	c := *task
	r.s.tasks = append(r.s.tasks, &c)
	return nil
}

func (r *fakeTaskRepo) GetByID(id string) (*entity.PutawayTask, error) {
	for _, t := range r.s.tasks {
		if t.ID == id {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeTaskRepo) GetForUpdate(id string) (*entity.PutawayTask, error) {
	return r.GetByID(id)
}

func (r *fakeTaskRepo) Update(task *entity.PutawayTask) error {
	for i, t := range r.s.tasks {
		if t.ID == task.ID {
			c := *task
			r.s.tasks[i] = &c
			return nil
		}
	}
	return nil
}

func (r *fakeTaskRepo) List(filters repository.PutawayTaskFilters, limit, offset int) ([]*entity.PutawayTask, error) {
	var out []*entity.PutawayTask
	for _, t := range r.s.tasks {
		if filters.Status != "" && t.Status != filters.Status {
			continue
		}
		if filters.AssignedTo != "" && (t.AssignedTo == nil || *t.AssignedTo != filters.AssignedTo) {
			continue
		}
		c := *t
		out = append(out, &c)
	}
	if offset > len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTaskRepo) Count(filters repository.PutawayTaskFilters) (int, error) {
	list, _ := r.List(filters, len(r.s.tasks), 0)
	return len(list), nil
}

// ── BinLocationRepository ─────────────────────────────────────────────────────

type fakeBinRepo struct{ s *memStore }

func (r *fakeBinRepo) Create(bin *entity.BinLocation) error {
	c := *bin
	r.s.bins = append(r.s.bins, &c)
	return nil
}

func (r *fakeBinRepo) ListBySKU(sku string) ([]*entity.BinLocation, error) {
	var out []*entity.BinLocation
	for _, b := range r.s.bins {
		if b.SKU == sku {
			c := *b
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// ── Entorno de test ───────────────────────────────────────────────────────────

type testEnv struct {
	store     *memStore
	asnUC     *receiving.ASNUseCase
	receiptUC *receiving.ReceiptUseCase
	putawayUC *receiving.PutawayUseCase
	binUC     *receiving.BinUseCase
}

func newTestEnv() *testEnv {
	s := newMemStore()
	tx := &fakeTxRunner{s}
	log := logger.Nop()
	gen := ident.New()
	return &testEnv{
		store:     s,
		asnUC:     receiving.NewASNUseCase(tx, &fakeASNRepo{s}, gen, log),
		receiptUC: receiving.NewReceiptUseCase(tx, &fakeReceiptRepo{s}, gen, log),
		putawayUC: receiving.NewPutawayUseCase(tx, &fakeTaskRepo{s}, log),
		binUC:     receiving.NewBinUseCase(&fakeBinRepo{s}, log),
	}
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner reproduce la atomicidad: snapshot antes, restore si fn falla.
type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	asnRepo repository.ASNRepository,
	receiptRepo repository.ReceiptRepository,
	taskRepo repository.PutawayTaskRepository,
	binRepo repository.BinLocationRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(&fakeASNRepo{r.s}, &fakeReceiptRepo{r.s}, &fakeTaskRepo{r.s}, &fakeBinRepo{r.s})
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
