package report

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lotto-tools/report-center/pkg/models/domain"
)

// ErrUnknownReport is returned for an (entity, grouping) pair no report is
// registered for.
var ErrUnknownReport = errors.New("unknown report")

// Descriptor pairs one (entity, grouping) report with the display metadata
// the menu endpoint serves and the transformer that builds it.
type Descriptor struct {
	Entity    domain.Entity
	Grouping  domain.Grouping
	Title     string
	Icon      string
	ChartType string
	Transform TransformFunc
}

// Registry resolves (entity, grouping) pairs to report descriptors.
type Registry interface {
	Register(d Descriptor) error
	Lookup(entity domain.Entity, grouping domain.Grouping) (Descriptor, error)
	List() []Descriptor
}

type registry struct {
	mu    sync.RWMutex
	order []string
	byKey map[string]Descriptor
}

func descriptorKey(e domain.Entity, g domain.Grouping) string {
	return string(e) + "/" + string(g)
}

// NewRegistry returns a registry pre-populated with every supported report.
func NewRegistry() Registry {
	r := &registry{byKey: make(map[string]Descriptor)}
	for _, d := range defaultDescriptors() {
		// static set; duplicates would be a programming error
		_ = r.Register(d)
	}
	return r
}

func (r *registry) Register(d Descriptor) error {
	if d.Entity == "" || d.Grouping == "" {
		return fmt.Errorf("descriptor needs both entity and grouping")
	}
	if d.Transform == nil {
		return fmt.Errorf("descriptor %s/%s has no transformer", d.Entity, d.Grouping)
	}

	key := descriptorKey(d.Entity, d.Grouping)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[key]; exists {
		return fmt.Errorf("report %q is already registered", key)
	}
	r.byKey[key] = d
	r.order = append(r.order, key)
	return nil
}

func (r *registry) Lookup(entity domain.Entity, grouping domain.Grouping) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byKey[descriptorKey(entity, grouping)]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s/%s", ErrUnknownReport, entity, grouping)
	}
	return d, nil
}

func (r *registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byKey[key])
	}
	return out
}

func defaultDescriptors() []Descriptor {
	return []Descriptor{
		{domain.EntityDeposits, domain.GroupingBank, "Depósitos por banco", "bank", "pie", DepositsByBank},
		{domain.EntityDeposits, domain.GroupingCustomer, "Depósitos por jugador", "user", "bar", DepositsByCustomer},
		{domain.EntityDeposits, domain.GroupingShop, "Depósitos por comercio", "store", "pie", DepositsByShop},
		{domain.EntityDeposits, domain.GroupingMethod, "Depósitos por método de pago", "card", "pie", DepositsByMethod},
		{domain.EntityReloads, domain.GroupingBank, "Recargas por banco", "bank", "pie", ReloadsByBank},
		{domain.EntityReloads, domain.GroupingCustomer, "Recargas por jugador", "user", "bar", ReloadsByCustomer},
		{domain.EntityReloads, domain.GroupingShop, "Recargas por comercio", "store", "pie", ReloadsByShop},
		{domain.EntityWithdrawals, domain.GroupingBank, "Retiros por banco", "bank", "pie", WithdrawalsByBank},
		{domain.EntityWithdrawals, domain.GroupingCustomer, "Retiros por jugador", "user", "bar", WithdrawalsByCustomer},
		{domain.EntityPromotions, domain.GroupingTier, "Promociones por categoría", "gift", "pie", PromotionsByTier},
		{domain.EntityPromotions, domain.GroupingCustomer, "Promociones por jugador", "user", "bar", PromotionsByCustomer},
	}
}
