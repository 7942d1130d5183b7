package handler

import (
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/protim1451/task-12-server/internal/domain"
)

// -------------------------
// In-memory fakes
// -------------------------

func parseID(id string) (primitive.ObjectID, error) {
	v, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return v, nil
}

type fakeUserRepo struct {
	users []domain.User
}

func (r *fakeUserRepo) Insert(ctx context.Context, u *domain.User) (primitive.ObjectID, error) {
	u.ID = primitive.NewObjectID()
	r.users = append(r.users, *u)
	return u.ID, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	return append([]domain.User(nil), r.users...), nil
}

func (r *fakeUserRepo) PromoteToAdmin(ctx context.Context, id string) (domain.UpdateResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	for i := range r.users {
		if r.users[i].ID == objID {
			res := domain.UpdateResult{MatchedCount: 1}
			if r.users[i].Role != domain.RoleAdmin {
				r.users[i].Role = domain.RoleAdmin
				res.ModifiedCount = 1
			}
			return res, nil
		}
	}
	return domain.UpdateResult{}, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	for i := range r.users {
		if r.users[i].ID == objID {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return domain.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return domain.DeleteResult{}, nil
}

type fakePetRepo struct {
	pets []domain.Pet
}

func (r *fakePetRepo) Insert(ctx context.Context, p *domain.Pet) (primitive.ObjectID, error) {
	p.ID = primitive.NewObjectID()
	r.pets = append(r.pets, *p)
	return p.ID, nil
}

func (r *fakePetRepo) List(ctx context.Context, pg domain.PetPage) ([]domain.Pet, error) {
	matched := make([]domain.Pet, 0)
	for _, p := range r.pets {
		if p.Adopted {
			continue
		}
		if pg.Owner != "" && p.Owner != pg.Owner {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].AddedAt.After(matched[j].AddedAt)
	})
	skip := (pg.Page - 1) * pg.PageSize
	if skip >= int64(len(matched)) {
		return []domain.Pet{}, nil
	}
	end := skip + pg.PageSize
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[skip:end], nil
}

func (r *fakePetRepo) FindByID(ctx context.Context, id string) (*domain.Pet, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	for i := range r.pets {
		if r.pets[i].ID == objID {
			p := r.pets[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePetRepo) FindByOwner(ctx context.Context, ownerEmail string) ([]domain.Pet, error) {
	out := make([]domain.Pet, 0)
	for _, p := range r.pets {
		if p.Owner == ownerEmail {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePetRepo) Update(ctx context.Context, id string, fields map[string]any) (domain.UpdateResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	for i := range r.pets {
		if r.pets[i].ID == objID {
			if name, ok := fields["name"].(string); ok {
				r.pets[i].Name = name
			}
			if adopted, ok := fields["adopted"].(bool); ok {
				r.pets[i].Adopted = adopted
			}
			return domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return domain.UpdateResult{}, nil
}

func (r *fakePetRepo) MarkAdopted(ctx context.Context, id string) (domain.UpdateResult, error) {
	return r.Update(ctx, id, map[string]any{"adopted": true})
}

func (r *fakePetRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	for i := range r.pets {
		if r.pets[i].ID == objID {
			r.pets = append(r.pets[:i], r.pets[i+1:]...)
			return domain.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return domain.DeleteResult{}, nil
}

type fakeAdoptionRepo struct {
	reqs []domain.AdoptionRequest
}

func (r *fakeAdoptionRepo) Insert(ctx context.Context, a *domain.AdoptionRequest) (primitive.ObjectID, error) {
	a.ID = primitive.NewObjectID()
	r.reqs = append(r.reqs, *a)
	return a.ID, nil
}

func (r *fakeAdoptionRepo) ListByPetIDs(ctx context.Context, petIDs []primitive.ObjectID) ([]domain.AdoptionRequest, error) {
	out := make([]domain.AdoptionRequest, 0)
	for _, req := range r.reqs {
		for _, id := range petIDs {
			if req.PetID == id {
				out = append(out, req)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeAdoptionRepo) SetStatus(ctx context.Context, id, status string) (domain.UpdateResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	for i := range r.reqs {
		if r.reqs[i].ID == objID {
			r.reqs[i].Status = status
			return domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return domain.UpdateResult{}, nil
}

type fakeCampaignRepo struct {
	campaigns []domain.DonationCampaign
}

func (r *fakeCampaignRepo) Insert(ctx context.Context, dc *domain.DonationCampaign) (primitive.ObjectID, error) {
	dc.ID = primitive.NewObjectID()
	r.campaigns = append(r.campaigns, *dc)
	return dc.ID, nil
}

func (r *fakeCampaignRepo) List(ctx context.Context, page, pageSize int64) ([]domain.DonationCampaign, error) {
	skip := (page - 1) * pageSize
	if skip >= int64(len(r.campaigns)) {
		return []domain.DonationCampaign{}, nil
	}
	end := skip + pageSize
	if end > int64(len(r.campaigns)) {
		end = int64(len(r.campaigns))
	}
	return append([]domain.DonationCampaign(nil), r.campaigns[skip:end]...), nil
}

func (r *fakeCampaignRepo) FindByID(ctx context.Context, id string) (*domain.DonationCampaign, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	for i := range r.campaigns {
		if r.campaigns[i].ID == objID {
			dc := r.campaigns[i]
			return &dc, nil
		}
	}
	return nil, nil
}

func (r *fakeCampaignRepo) Update(ctx context.Context, id string, fields map[string]any) (domain.UpdateResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	for i := range r.campaigns {
		if r.campaigns[i].ID == objID {
			return domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return domain.UpdateResult{}, nil
}

func (r *fakeCampaignRepo) SetPaused(ctx context.Context, id string, paused bool) (domain.UpdateResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	for i := range r.campaigns {
		if r.campaigns[i].ID == objID {
			r.campaigns[i].IsPaused = paused
			return domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return domain.UpdateResult{}, nil
}

func (r *fakeCampaignRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	for i := range r.campaigns {
		if r.campaigns[i].ID == objID {
			r.campaigns = append(r.campaigns[:i], r.campaigns[i+1:]...)
			return domain.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return domain.DeleteResult{}, nil
}

func (r *fakeCampaignRepo) Recommended(ctx context.Context, excludeID string) ([]domain.DonationCampaign, error) {
	var skip primitive.ObjectID
	if excludeID != "" {
		var err error
		skip, err = parseID(excludeID)
		if err != nil {
			return nil, err
		}
	}
	out := make([]domain.DonationCampaign, 0, domain.RecommendedLimit)
	for _, dc := range r.campaigns {
		if dc.ID == skip {
			continue
		}
		out = append(out, dc)
		if len(out) == domain.RecommendedLimit {
			break
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments  []domain.Payment
	cartErr   error
	cleared   [][]string
	clearedCt int64
}

func (r *fakePaymentRepo) Insert(ctx context.Context, p *domain.Payment) (primitive.ObjectID, error) {
	p.ID = primitive.NewObjectID()
	r.payments = append(r.payments, *p)
	return p.ID, nil
}

func (r *fakePaymentRepo) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	out := make([]domain.Payment, 0)
	for _, p := range r.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) ListAll(ctx context.Context) ([]domain.Payment, error) {
	return append([]domain.Payment(nil), r.payments...), nil
}

func (r *fakePaymentRepo) ClearCart(ctx context.Context, cartIDs []string) (domain.DeleteResult, error) {
	if r.cartErr != nil {
		return domain.DeleteResult{}, r.cartErr
	}
	r.cleared = append(r.cleared, cartIDs)
	r.clearedCt = int64(len(cartIDs))
	return domain.DeleteResult{DeletedCount: r.clearedCt}, nil
}

// fakeIntents stubs the payment provider.
type fakeIntents struct {
	secret string
	err    error
	gotAmt float64
}

func (f *fakeIntents) CreateIntent(amount float64) (string, error) {
	f.gotAmt = amount
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}

var errProviderDown = errors.New("provider down")
