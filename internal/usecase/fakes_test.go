package usecase

import (
	"context"
	"strings"
	"sync"

	"huduma/internal/domain/entity"
	"huduma/internal/domain/repository"
	"huduma/pkg/errors"
)

// In-memory repository fakes. They mirror the durable-store contracts closely
// enough to exercise the use cases without a live backend.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *memUserRepo) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.PhoneNumber == phoneNumber {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

type memJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*entity.Job
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: make(map[string]*entity.Job)}
}

func (r *memJobRepo) Create(ctx context.Context, job *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *memJobRepo) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, errors.NotFound("Job", nil)
	}
	copied := *job
	return &copied, nil
}

func (r *memJobRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Job, error) {
	return r.list(func(j *entity.Job) bool { return j.CustomerID == customerID })
}

func (r *memJobRepo) ListByProvider(ctx context.Context, providerID string) ([]*entity.Job, error) {
	return r.list(func(j *entity.Job) bool { return j.ProviderID == providerID })
}

func (r *memJobRepo) Update(ctx context.Context, job *entity.Job) error {
	return r.Create(ctx, job)
}

func (r *memJobRepo) list(match func(*entity.Job) bool) ([]*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var jobs []*entity.Job
	for _, job := range r.jobs {
		if match(job) {
			copied := *job
			jobs = append(jobs, &copied)
		}
	}
	return jobs, nil
}

type memMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.Message
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{}
}

func (r *memMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *memMessageRepo) ListByJob(ctx context.Context, jobID string) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Message
	for _, message := range r.messages {
		if message.JobID == jobID {
			copied := *message
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memMessageRepo) MarkReadByReceiver(ctx context.Context, jobID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, message := range r.messages {
		if message.JobID == jobID && message.ReceiverID == userID {
			message.IsRead = true
		}
	}
	return nil
}

type memCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*entity.ServiceCategory
	order      []string
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[string]*entity.ServiceCategory)}
}

func (r *memCategoryRepo) Create(ctx context.Context, category *entity.ServiceCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; !ok {
		r.order = append(r.order, category.ID)
	}
	r.categories[category.ID] = category
	return nil
}

func (r *memCategoryRepo) GetByID(ctx context.Context, id string) (*entity.ServiceCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return category, nil
}

func (r *memCategoryRepo) List(ctx context.Context) ([]*entity.ServiceCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.ServiceCategory, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.categories[id])
	}
	return out, nil
}

type memProviderRepo struct {
	mu        sync.Mutex
	providers map[string]*entity.ServiceProvider
	users     *memUserRepo
}

func newMemProviderRepo(users *memUserRepo) *memProviderRepo {
	return &memProviderRepo{
		providers: make(map[string]*entity.ServiceProvider),
		users:     users,
	}
}

func (r *memProviderRepo) Create(ctx context.Context, provider *entity.ServiceProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *provider
	r.providers[provider.ID] = &copied
	return nil
}

func (r *memProviderRepo) GetByID(ctx context.Context, id string) (*entity.ServiceProvider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	provider, ok := r.providers[id]
	if !ok {
		return nil, errors.NotFound("Provider", nil)
	}
	copied := *provider
	return &copied, nil
}

func (r *memProviderRepo) GetByUserID(ctx context.Context, userID string) (*entity.ServiceProvider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, provider := range r.providers {
		if provider.UserID == userID {
			copied := *provider
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Provider", nil)
}

func (r *memProviderRepo) List(ctx context.Context, filter repository.ProviderFilter, limit, offset int) ([]*entity.ServiceProvider, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.ServiceProvider
	for _, provider := range r.providers {
		if !provider.IsActive {
			continue
		}
		if filter.CategoryID != "" && provider.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Location != "" {
			user, err := r.users.GetByID(ctx, provider.UserID)
			if err != nil || !strings.Contains(strings.ToLower(user.Location), strings.ToLower(filter.Location)) {
				continue
			}
		}
		copied := *provider
		matched = append(matched, &copied)
	}

	total := int64(len(matched))
	if offset > 0 {
		if offset >= len(matched) {
			return nil, total, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *memProviderRepo) Update(ctx context.Context, provider *entity.ServiceProvider) error {
	return r.Create(ctx, provider)
}

type memReviewRepo struct {
	mu      sync.Mutex
	reviews []*entity.Review
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{}
}

func (r *memReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *memReviewRepo) GetByJobID(ctx context.Context, jobID string) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, review := range r.reviews {
		if review.JobID == jobID {
			return review, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *memReviewRepo) ListByProvider(ctx context.Context, providerID string) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Review
	for _, review := range r.reviews {
		if review.ProviderID == providerID {
			out = append(out, review)
		}
	}
	return out, nil
}

type memFavoriteRepo struct {
	mu        sync.Mutex
	favorites []*entity.Favorite
}

func newMemFavoriteRepo() *memFavoriteRepo {
	return &memFavoriteRepo{}
}

func (r *memFavoriteRepo) Create(ctx context.Context, favorite *entity.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.favorites = append(r.favorites, favorite)
	return nil
}

func (r *memFavoriteRepo) GetByCustomerAndProvider(ctx context.Context, customerID, providerID string) (*entity.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, favorite := range r.favorites {
		if favorite.CustomerID == customerID && favorite.ProviderID == providerID {
			return favorite, nil
		}
	}
	return nil, errors.NotFound("Favorite", nil)
}

func (r *memFavoriteRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Favorite
	for _, favorite := range r.favorites {
		if favorite.CustomerID == customerID {
			out = append(out, favorite)
		}
	}
	return out, nil
}

func (r *memFavoriteRepo) Delete(ctx context.Context, customerID, providerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.favorites[:0]
	for _, favorite := range r.favorites {
		if favorite.CustomerID == customerID && favorite.ProviderID == providerID {
			continue
		}
		kept = append(kept, favorite)
	}
	r.favorites = kept
	return nil
}
