package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"camping-fun/server/internal/model"
	"camping-fun/server/internal/repository"
)

// ── Mock store ──

// mockStore is the in-memory state shared by the mock repositories so that
// signups can see campers and activities.
type mockStore struct {
	campers    map[uint]*model.Camper
	activities map[uint]*model.Activity
	signups    map[uint]*model.Signup
	nextID     uint

	// failWith, when set, is returned by every call
	failWith error
}

func newMockStore() *mockStore {
	return &mockStore{
		campers:    make(map[uint]*model.Camper),
		activities: make(map[uint]*model.Activity),
		signups:    make(map[uint]*model.Signup),
	}
}

func (s *mockStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *mockStore) repository() *repository.Repository {
	return &repository.Repository{
		Camper:   &mockCamperRepo{s},
		Activity: &mockActivityRepo{s},
		Signup:   &mockSignupRepo{s},
	}
}

func (s *mockStore) addCamper(name string, age int) *model.Camper {
	c := &model.Camper{ID: s.id(), Name: name, Age: age}
	s.campers[c.ID] = c
	return c
}

func (s *mockStore) addActivity(name string, difficulty int) *model.Activity {
	a := &model.Activity{ID: s.id(), Name: name, Difficulty: difficulty}
	s.activities[a.ID] = a
	return a
}

func (s *mockStore) addSignup(hour int, camperID, activityID uint) *model.Signup {
	su := &model.Signup{ID: s.id(), Time: hour, CamperID: camperID, ActivityID: activityID}
	s.signups[su.ID] = su
	return su
}

// signupsWhere returns copies of the matching signups with both parents
// attached, ordered by hour.
func (s *mockStore) signupsWhere(keep func(*model.Signup) bool) []model.Signup {
	var result []model.Signup
	for _, su := range s.signups {
		if !keep(su) {
			continue
		}
		cp := *su
		cp.Camper = s.campers[su.CamperID]
		cp.Activity = s.activities[su.ActivityID]
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Time != result[j].Time {
			return result[i].Time < result[j].Time
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// ── Mock CamperRepository ──

type mockCamperRepo struct{ s *mockStore }

func (m *mockCamperRepo) Create(_ context.Context, camper *model.Camper) error {
	if m.s.failWith != nil {
		return m.s.failWith
	}
	camper.ID = m.s.id()
	cp := *camper
	m.s.campers[camper.ID] = &cp
	return nil
}

func (m *mockCamperRepo) GetByID(_ context.Context, id uint) (*model.Camper, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	c, ok := m.s.campers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCamperRepo) GetWithSignups(ctx context.Context, id uint) (*model.Camper, error) {
	c, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Signups = m.s.signupsWhere(func(su *model.Signup) bool { return su.CamperID == id })
	return c, nil
}

func (m *mockCamperRepo) List(_ context.Context) ([]model.Camper, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	var result []model.Camper
	for _, c := range m.s.campers {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockCamperRepo) Update(_ context.Context, camper *model.Camper) error {
	if m.s.failWith != nil {
		return m.s.failWith
	}
	cp := *camper
	cp.Signups = nil
	m.s.campers[camper.ID] = &cp
	return nil
}

func (m *mockCamperRepo) Delete(_ context.Context, camper *model.Camper) error {
	for id, su := range m.s.signups {
		if su.CamperID == camper.ID {
			delete(m.s.signups, id)
		}
	}
	delete(m.s.campers, camper.ID)
	return nil
}

// ── Mock ActivityRepository ──

type mockActivityRepo struct{ s *mockStore }

func (m *mockActivityRepo) Create(_ context.Context, activity *model.Activity) error {
	activity.ID = m.s.id()
	cp := *activity
	m.s.activities[activity.ID] = &cp
	return nil
}

func (m *mockActivityRepo) GetByID(_ context.Context, id uint) (*model.Activity, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	a, ok := m.s.activities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockActivityRepo) List(_ context.Context) ([]model.Activity, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	var result []model.Activity
	for _, a := range m.s.activities {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockActivityRepo) Delete(_ context.Context, activity *model.Activity) error {
	if m.s.failWith != nil {
		return m.s.failWith
	}
	for id, su := range m.s.signups {
		if su.ActivityID == activity.ID {
			delete(m.s.signups, id)
		}
	}
	delete(m.s.activities, activity.ID)
	return nil
}

// ── Mock SignupRepository ──

type mockSignupRepo struct{ s *mockStore }

// Create rejects unknown parents the way the foreign keys do.
func (m *mockSignupRepo) Create(_ context.Context, signup *model.Signup) error {
	if m.s.failWith != nil {
		return m.s.failWith
	}
	if _, ok := m.s.campers[signup.CamperID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	if _, ok := m.s.activities[signup.ActivityID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	signup.ID = m.s.id()
	cp := *signup
	m.s.signups[signup.ID] = &cp
	return nil
}

func (m *mockSignupRepo) GetByID(_ context.Context, id uint) (*model.Signup, error) {
	found := m.s.signupsWhere(func(su *model.Signup) bool { return su.ID == id })
	if len(found) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &found[0], nil
}

func (m *mockSignupRepo) ListDetailed(_ context.Context) ([]model.Signup, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	return m.s.signupsWhere(func(*model.Signup) bool { return true }), nil
}

func (m *mockSignupRepo) CountByActivity(_ context.Context, activityID uint) (int64, error) {
	var n int64
	for _, su := range m.s.signups {
		if su.ActivityID == activityID {
			n++
		}
	}
	return n, nil
}
