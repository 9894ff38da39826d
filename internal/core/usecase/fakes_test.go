package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

// In-memory реализации портов хранилища для тестов use case.

type fakeRealtorRepo struct {
	realtors map[uuid.UUID]*domain.Realtor
	linked   bool
}

func newFakeRealtorRepo() *fakeRealtorRepo {
	return &fakeRealtorRepo{realtors: make(map[uuid.UUID]*domain.Realtor)}
}

func (f *fakeRealtorRepo) Create(_ context.Context, r *domain.Realtor) error {
	cp := *r
	f.realtors[r.ID] = &cp
	return nil
}

func (f *fakeRealtorRepo) Update(_ context.Context, r *domain.Realtor) error {
	if _, ok := f.realtors[r.ID]; !ok {
		return domain.ErrRealtorNotFound
	}
	cp := *r
	f.realtors[r.ID] = &cp
	return nil
}

func (f *fakeRealtorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.realtors[id]; !ok {
		return domain.ErrRealtorNotFound
	}
	delete(f.realtors, id)
	return nil
}

func (f *fakeRealtorRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Realtor, error) {
	return f.realtors[id], nil
}

func (f *fakeRealtorRepo) List(_ context.Context, search string) ([]domain.Realtor, error) {
	result := make([]domain.Realtor, 0, len(f.realtors))
	for _, r := range f.realtors {
		if search == "" || strings.Contains(r.Surname+" "+r.Name+" "+r.Patronymic, search) {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (f *fakeRealtorRepo) HasLinkedRecords(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.linked, nil
}

type fakeClientRepo struct {
	clients map[uuid.UUID]*domain.Client
	linked  bool
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uuid.UUID]*domain.Client)}
}

func (f *fakeClientRepo) Create(_ context.Context, c *domain.Client) error {
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeClientRepo) Update(_ context.Context, c *domain.Client) error {
	if _, ok := f.clients[c.ID]; !ok {
		return domain.ErrClientNotFound
	}
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(f.clients, id)
	return nil
}

func (f *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	return f.clients[id], nil
}

func (f *fakeClientRepo) List(_ context.Context, _ string) ([]domain.Client, error) {
	result := make([]domain.Client, 0, len(f.clients))
	for _, c := range f.clients {
		result = append(result, *c)
	}
	return result, nil
}

func (f *fakeClientRepo) HasLinkedRecords(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.linked, nil
}

type fakePropertyRepo struct {
	properties map[uuid.UUID]*domain.Property
	hasOffers  bool
	findErr    error
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: make(map[uuid.UUID]*domain.Property)}
}

func (f *fakePropertyRepo) Create(_ context.Context, p *domain.Property) error {
	cp := *p
	f.properties[p.ID] = &cp
	return nil
}

func (f *fakePropertyRepo) Update(_ context.Context, p *domain.Property) error {
	if _, ok := f.properties[p.ID]; !ok {
		return domain.ErrPropertyNotFound
	}
	cp := *p
	f.properties[p.ID] = &cp
	return nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.properties[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(f.properties, id)
	return nil
}

func (f *fakePropertyRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Property, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.properties[id], nil
}

func (f *fakePropertyRepo) List(_ context.Context, _ port.PropertyFilter) ([]domain.Property, error) {
	result := make([]domain.Property, 0, len(f.properties))
	for _, p := range f.properties {
		result = append(result, *p)
	}
	return result, nil
}

func (f *fakePropertyRepo) HasOffers(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.hasOffers, nil
}

type fakeOfferRepo struct {
	offers []domain.Offer
}

func (f *fakeOfferRepo) Create(_ context.Context, o *domain.Offer) error {
	f.offers = append(f.offers, *o)
	return nil
}

func (f *fakeOfferRepo) Update(_ context.Context, o *domain.Offer) error {
	for i := range f.offers {
		if f.offers[i].ID == o.ID {
			f.offers[i] = *o
			return nil
		}
	}
	return domain.ErrOfferNotFound
}

func (f *fakeOfferRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.offers {
		if f.offers[i].ID == id {
			f.offers = append(f.offers[:i], f.offers[i+1:]...)
			return nil
		}
	}
	return domain.ErrOfferNotFound
}

func (f *fakeOfferRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Offer, error) {
	for i := range f.offers {
		if f.offers[i].ID == id {
			cp := f.offers[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOfferRepo) List(_ context.Context) ([]domain.Offer, error) {
	return append([]domain.Offer(nil), f.offers...), nil
}

type fakeDemandRepo struct {
	demands map[uuid.UUID]*domain.Demand
}

func newFakeDemandRepo() *fakeDemandRepo {
	return &fakeDemandRepo{demands: make(map[uuid.UUID]*domain.Demand)}
}

func (f *fakeDemandRepo) Create(_ context.Context, d *domain.Demand) error {
	cp := *d
	f.demands[d.ID] = &cp
	return nil
}

func (f *fakeDemandRepo) Update(_ context.Context, d *domain.Demand) error {
	if _, ok := f.demands[d.ID]; !ok {
		return domain.ErrDemandNotFound
	}
	cp := *d
	f.demands[d.ID] = &cp
	return nil
}

func (f *fakeDemandRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.demands[id]; !ok {
		return domain.ErrDemandNotFound
	}
	delete(f.demands, id)
	return nil
}

func (f *fakeDemandRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Demand, error) {
	return f.demands[id], nil
}

func (f *fakeDemandRepo) List(_ context.Context) ([]domain.Demand, error) {
	result := make([]domain.Demand, 0, len(f.demands))
	for _, d := range f.demands {
		result = append(result, *d)
	}
	return result, nil
}

type fakeDealRepo struct {
	deals map[uuid.UUID]*domain.Deal
}

func newFakeDealRepo() *fakeDealRepo {
	return &fakeDealRepo{deals: make(map[uuid.UUID]*domain.Deal)}
}

func (f *fakeDealRepo) Create(_ context.Context, d *domain.Deal) error {
	cp := *d
	f.deals[d.ID] = &cp
	return nil
}

func (f *fakeDealRepo) Update(_ context.Context, d *domain.Deal) error {
	if _, ok := f.deals[d.ID]; !ok {
		return domain.ErrDealNotFound
	}
	cp := *d
	f.deals[d.ID] = &cp
	return nil
}

func (f *fakeDealRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.deals[id]; !ok {
		return domain.ErrDealNotFound
	}
	delete(f.deals, id)
	return nil
}

func (f *fakeDealRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Deal, error) {
	return f.deals[id], nil
}

func (f *fakeDealRepo) List(_ context.Context) ([]domain.Deal, error) {
	result := make([]domain.Deal, 0, len(f.deals))
	for _, d := range f.deals {
		result = append(result, *d)
	}
	return result, nil
}

func (f *fakeDealRepo) ExistsForOffer(_ context.Context, offerID uuid.UUID) (bool, error) {
	for _, d := range f.deals {
		if d.OfferID == offerID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDealRepo) ExistsForDemand(_ context.Context, demandID uuid.UUID) (bool, error) {
	for _, d := range f.deals {
		if d.DemandID == demandID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDealRepo) SatisfiedOfferIDs(_ context.Context) (map[uuid.UUID]struct{}, error) {
	ids := make(map[uuid.UUID]struct{}, len(f.deals))
	for _, d := range f.deals {
		ids[d.OfferID] = struct{}{}
	}
	return ids, nil
}

type publishedEvent struct {
	deal        *domain.Deal
	commissions domain.CommissionBreakdown
}

type fakeDealEvents struct {
	published  []publishedEvent
	publishErr error
}

func (f *fakeDealEvents) DealCreated(_ context.Context, deal *domain.Deal, commissions domain.CommissionBreakdown) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, publishedEvent{deal: deal, commissions: commissions})
	return nil
}

func (f *fakeDealEvents) Close() error { return nil }

func f64Ptr(v float64) *float64 { return &v }
