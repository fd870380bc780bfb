package service

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/skill"
)

type categoryKey struct {
	userID int64
	name   string
}

type fakeSkillRepo struct {
	mu         sync.Mutex
	nextID     int64
	skills     map[int64]skill.Skill
	categories map[int64]skill.SkillCategory
	byName     map[categoryKey]int64
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{
		skills:     make(map[int64]skill.Skill),
		categories: make(map[int64]skill.SkillCategory),
		byName:     make(map[categoryKey]int64),
	}
}

func (f *fakeSkillRepo) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]skill.Skill, 0, len(f.skills))
	for _, s := range f.skills {
		c := f.categories[s.CategoryID]
		s.Category = &c
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeSkillRepo) GetSkillByID(ctx context.Context, id int64) (*skill.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.skills[id]
	if !ok {
		return nil, skill.ErrSkillNotFound
	}
	c := f.categories[s.CategoryID]
	s.Category = &c
	return &s, nil
}

func (f *fakeSkillRepo) CreateSkill(ctx context.Context, name string, categoryID int64, icon string, order int) (*skill.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[categoryID]
	if !ok {
		return nil, skill.ErrCategoryNotFound
	}
	f.nextID++
	s := skill.Skill{ID: f.nextID, Name: name, CategoryID: categoryID, Icon: icon, Order: order}
	f.skills[s.ID] = s
	s.Category = &c
	return &s, nil
}

func (f *fakeSkillRepo) UpdateSkill(ctx context.Context, id int64, params skill.UpdateSkillParams) (*skill.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.skills[id]
	if !ok {
		return nil, skill.ErrSkillNotFound
	}
	if params.Name != nil {
		s.Name = *params.Name
	}
	if params.CategoryID != nil {
		if _, ok := f.categories[*params.CategoryID]; !ok {
			return nil, skill.ErrCategoryNotFound
		}
		s.CategoryID = *params.CategoryID
	}
	if params.Icon != nil {
		s.Icon = *params.Icon
	}
	if params.Order != nil {
		s.Order = *params.Order
	}
	f.skills[id] = s
	c := f.categories[s.CategoryID]
	s.Category = &c
	return &s, nil
}

func (f *fakeSkillRepo) DeleteSkill(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.skills[id]; !ok {
		return skill.ErrSkillNotFound
	}
	delete(f.skills, id)
	return nil
}

func (f *fakeSkillRepo) ListCategories(ctx context.Context) ([]skill.SkillCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]skill.SkillCategory, 0, len(f.categories))
	for _, c := range f.categories {
		c.Skills = make([]skill.Skill, 0)
		for _, s := range f.skills {
			if s.CategoryID == c.ID {
				c.Skills = append(c.Skills, s)
			}
		}
		sort.Slice(c.Skills, func(i, j int) bool {
			if c.Skills[i].Order != c.Skills[j].Order {
				return c.Skills[i].Order < c.Skills[j].Order
			}
			return c.Skills[i].ID < c.Skills[j].ID
		})
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeSkillRepo) GetCategoryByID(ctx context.Context, id int64) (*skill.SkillCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[id]
	if !ok {
		return nil, skill.ErrCategoryNotFound
	}
	return &c, nil
}

func (f *fakeSkillRepo) CreateCategory(ctx context.Context, userID int64, req skill.CreateCategoryRequest) (*skill.SkillCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := categoryKey{userID: userID, name: req.Name}
	if _, exists := f.byName[key]; exists {
		return nil, skill.ErrCategoryAlreadyExists
	}
	f.nextID++
	c := skill.SkillCategory{ID: f.nextID, Name: req.Name, UserID: userID, Order: req.Order}
	f.categories[c.ID] = c
	f.byName[key] = c.ID
	return &c, nil
}

func (f *fakeSkillRepo) FindOrCreateCategory(ctx context.Context, userID int64, name string) (*skill.SkillCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := categoryKey{userID: userID, name: name}
	if id, exists := f.byName[key]; exists {
		c := f.categories[id]
		return &c, nil
	}
	f.nextID++
	c := skill.SkillCategory{ID: f.nextID, Name: name, UserID: userID}
	f.categories[c.ID] = c
	f.byName[key] = c.ID
	return &c, nil
}

func (f *fakeSkillRepo) UpdateCategory(ctx context.Context, id int64, req skill.UpdateCategoryRequest) (*skill.SkillCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[id]
	if !ok {
		return nil, skill.ErrCategoryNotFound
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Order != nil {
		c.Order = *req.Order
	}
	f.categories[id] = c
	return &c, nil
}

func (f *fakeSkillRepo) DeleteCategory(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[id]
	if !ok {
		return skill.ErrCategoryNotFound
	}
	for _, s := range f.skills {
		if s.CategoryID == id {
			return skill.ErrCategoryNotEmpty
		}
	}
	delete(f.categories, id)
	delete(f.byName, categoryKey{userID: c.UserID, name: c.Name})
	return nil
}

func TestCreateSkillByCategoryName(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())
	ctx := context.Background()

	s, err := svc.CreateSkill(ctx, skill.CreateSkillRequest{Name: "Go", Category: "Backend"})
	require.NoError(t, err)
	require.NotNil(t, s.Category)
	assert.Equal(t, "Backend", s.Category.Name)
	assert.Equal(t, skill.DefaultOwnerID, s.Category.UserID)

	// Same name resolves to the same category.
	s2, err := svc.CreateSkill(ctx, skill.CreateSkillRequest{Name: "PostgreSQL", Category: "Backend"})
	require.NoError(t, err)
	assert.Equal(t, s.CategoryID, s2.CategoryID)
}

func TestCreateSkillByCategoryID(t *testing.T) {
	repo := newFakeSkillRepo()
	svc := NewSkillService(repo)
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, skill.CreateCategoryRequest{Name: "Frontend"})
	require.NoError(t, err)

	s, err := svc.CreateSkill(ctx, skill.CreateSkillRequest{Name: "React", CategoryID: &c.ID})
	require.NoError(t, err)
	assert.Equal(t, c.ID, s.CategoryID)
}

func TestCreateSkillUnknownCategoryID(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())

	missing := int64(99)
	_, err := svc.CreateSkill(context.Background(), skill.CreateSkillRequest{Name: "Go", CategoryID: &missing})
	assert.ErrorIs(t, err, skill.ErrCategoryNotFound)
}

func TestCreateSkillRequiresCategoryReference(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())

	_, err := svc.CreateSkill(context.Background(), skill.CreateSkillRequest{Name: "Go"})
	assert.Error(t, err)
}

func TestConcurrentFindOrCreateYieldsOneCategory(t *testing.T) {
	repo := newFakeSkillRepo()
	svc := NewSkillService(repo)
	ctx := context.Background()

	const workers = 16
	ids := make([]int64, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := svc.CreateSkill(ctx, skill.CreateSkillRequest{Name: "Go", Category: "Backend"})
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = s.CategoryID
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Len(t, categories[0].Skills, workers)
}

func TestUpdateSkillPartialKeepsIcon(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())
	ctx := context.Background()

	created, err := svc.CreateSkill(ctx, skill.CreateSkillRequest{
		Name:     "Go",
		Category: "Backend",
		Icon:     "gopher.svg",
	})
	require.NoError(t, err)

	name := "Golang"
	updated, err := svc.UpdateSkill(ctx, created.ID, skill.UpdateSkillRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Golang", updated.Name)
	assert.Equal(t, "gopher.svg", updated.Icon)
	assert.Equal(t, created.CategoryID, updated.CategoryID)
}

func TestUpdateSkillMoveToNewCategoryByName(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())
	ctx := context.Background()

	created, err := svc.CreateSkill(ctx, skill.CreateSkillRequest{Name: "Docker", Category: "Backend"})
	require.NoError(t, err)

	target := "DevOps"
	updated, err := svc.UpdateSkill(ctx, created.ID, skill.UpdateSkillRequest{Category: &target})
	require.NoError(t, err)

	assert.NotEqual(t, created.CategoryID, updated.CategoryID)
	require.NotNil(t, updated.Category)
	assert.Equal(t, "DevOps", updated.Category.Name)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, skill.CreateCategoryRequest{Name: "Backend"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, skill.CreateCategoryRequest{Name: "Backend"})
	assert.ErrorIs(t, err, skill.ErrCategoryAlreadyExists)
}

func TestDeleteCategoryWithSkillsRejected(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())
	ctx := context.Background()

	s, err := svc.CreateSkill(ctx, skill.CreateSkillRequest{Name: "Go", Category: "Backend"})
	require.NoError(t, err)

	err = svc.DeleteCategory(ctx, s.CategoryID)
	assert.ErrorIs(t, err, skill.ErrCategoryNotEmpty)

	// Empty it out, then deletion succeeds.
	require.NoError(t, svc.DeleteSkill(ctx, s.ID))
	require.NoError(t, svc.DeleteCategory(ctx, s.CategoryID))
}

func TestListCategoriesNestedOrdering(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())
	ctx := context.Background()

	backend, err := svc.CreateCategory(ctx, skill.CreateCategoryRequest{Name: "Backend", Order: 1})
	require.NoError(t, err)
	frontend, err := svc.CreateCategory(ctx, skill.CreateCategoryRequest{Name: "Frontend", Order: 0})
	require.NoError(t, err)

	_, err = svc.CreateSkill(ctx, skill.CreateSkillRequest{Name: "Go", CategoryID: &backend.ID, Order: 1})
	require.NoError(t, err)
	_, err = svc.CreateSkill(ctx, skill.CreateSkillRequest{Name: "PostgreSQL", CategoryID: &backend.ID, Order: 0})
	require.NoError(t, err)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.Equal(t, frontend.ID, categories[0].ID)
	assert.Equal(t, backend.ID, categories[1].ID)

	require.Len(t, categories[1].Skills, 2)
	assert.Equal(t, "PostgreSQL", categories[1].Skills[0].Name)
	assert.Equal(t, "Go", categories[1].Skills[1].Name)
}

func TestUpdateSkillEmptyCategoryNameRejected(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())
	ctx := context.Background()

	created, err := svc.CreateSkill(ctx, skill.CreateSkillRequest{Name: "Go", Category: "Backend"})
	require.NoError(t, err)

	empty := ""
	_, err = svc.UpdateSkill(ctx, created.ID, skill.UpdateSkillRequest{Category: &empty})
	require.Error(t, err)

	// No nameless category was created as a side effect.
	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Backend", categories[0].Name)
}
