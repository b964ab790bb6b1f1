package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"stargate-api/internal/model"
	"stargate-api/internal/repository"
)

// ── 共享内存存储 ──
// 人员读模型需要关联详情，三个 mock 共用一个存储

type mockStore struct {
	people  map[uint]*model.Person
	details map[uint]*model.AstronautDetail // keyed by person id
	duties  map[uint]*model.AstronautDuty
	nextID  uint
	locked  []string

	dutyCreateErr   error
	detailUpdateErr error
}

func newMockStore() *mockStore {
	return &mockStore{
		people:  make(map[uint]*model.Person),
		details: make(map[uint]*model.AstronautDetail),
		duties:  make(map[uint]*model.AstronautDuty),
	}
}

func (s *mockStore) id() uint {
	s.nextID++
	return s.nextID
}

func newMockRepository() (*repository.Repository, *mockStore) {
	store := newMockStore()
	repo := &repository.Repository{
		Person:          &mockPersonRepo{s: store},
		AstronautDetail: &mockDetailRepo{s: store},
		AstronautDuty:   &mockDutyRepo{s: store},
	}
	return repo, store
}

// addPerson seeds a person directly.
func (s *mockStore) addPerson(name string) *model.Person {
	p := &model.Person{ID: s.id(), Name: name}
	s.people[p.ID] = p
	return p
}

func (s *mockStore) dutiesOf(personID uint) []model.AstronautDuty {
	var result []model.AstronautDuty
	for _, d := range s.duties {
		if d.PersonID == personID {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DutyStartDate.After(result[j].DutyStartDate)
	})
	return result
}

// ── Mock PersonRepository ──

type mockPersonRepo struct {
	s *mockStore
}

func (m *mockPersonRepo) Create(_ context.Context, person *model.Person) error {
	for _, p := range m.s.people {
		if p.Name == person.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	person.ID = m.s.id()
	cp := *person
	m.s.people[person.ID] = &cp
	return nil
}

func (m *mockPersonRepo) GetByName(_ context.Context, name string) (*model.Person, error) {
	for _, p := range m.s.people {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonRepo) LockByName(ctx context.Context, name string) (*model.Person, error) {
	m.s.locked = append(m.s.locked, name)
	return m.GetByName(ctx, name)
}

func (m *mockPersonRepo) Update(_ context.Context, person *model.Person) error {
	for _, p := range m.s.people {
		if p.Name == person.Name && p.ID != person.ID {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *person
	m.s.people[person.ID] = &cp
	return nil
}

func (m *mockPersonRepo) ListAstronauts(_ context.Context) ([]model.PersonAstronaut, error) {
	var rows []model.PersonAstronaut
	for _, p := range m.s.people {
		rows = append(rows, m.project(p))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PersonID < rows[j].PersonID })
	return rows, nil
}

func (m *mockPersonRepo) GetAstronautByName(_ context.Context, name string, ignoreCase bool) (*model.PersonAstronaut, error) {
	for _, p := range m.s.people {
		if p.Name == name || (ignoreCase && strings.EqualFold(p.Name, name)) {
			row := m.project(p)
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonRepo) project(p *model.Person) model.PersonAstronaut {
	row := model.PersonAstronaut{PersonID: p.ID, Name: p.Name}
	if d, ok := m.s.details[p.ID]; ok {
		rank, title, start := d.CurrentRank, d.CurrentDutyTitle, d.CareerStartDate
		row.CurrentRank = &rank
		row.CurrentDutyTitle = &title
		row.CareerStartDate = &start
		row.CareerEndDate = d.CareerEndDate
	}
	return row
}

// ── Mock AstronautDetailRepository ──

type mockDetailRepo struct {
	s *mockStore
}

func (m *mockDetailRepo) Create(_ context.Context, detail *model.AstronautDetail) error {
	if _, ok := m.s.details[detail.PersonID]; ok {
		return gorm.ErrDuplicatedKey
	}
	detail.ID = m.s.id()
	cp := *detail
	m.s.details[detail.PersonID] = &cp
	return nil
}

func (m *mockDetailRepo) GetByPersonID(_ context.Context, personID uint) (*model.AstronautDetail, error) {
	if d, ok := m.s.details[personID]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDetailRepo) Update(_ context.Context, detail *model.AstronautDetail) error {
	if m.s.detailUpdateErr != nil {
		return m.s.detailUpdateErr
	}
	cp := *detail
	m.s.details[detail.PersonID] = &cp
	return nil
}

// ── Mock AstronautDutyRepository ──

type mockDutyRepo struct {
	s *mockStore
}

func (m *mockDutyRepo) Create(_ context.Context, duty *model.AstronautDuty) error {
	if m.s.dutyCreateErr != nil {
		return m.s.dutyCreateErr
	}
	for _, d := range m.s.duties {
		if d.PersonID == duty.PersonID && d.DutyTitle == duty.DutyTitle && d.DutyStartDate.Equal(duty.DutyStartDate) {
			return gorm.ErrDuplicatedKey
		}
	}
	duty.ID = m.s.id()
	cp := *duty
	m.s.duties[duty.ID] = &cp
	return nil
}

func (m *mockDutyRepo) Update(_ context.Context, duty *model.AstronautDuty) error {
	cp := *duty
	m.s.duties[duty.ID] = &cp
	return nil
}

func (m *mockDutyRepo) ListLatestByPersonID(_ context.Context, personID uint) ([]model.AstronautDuty, error) {
	all := m.s.dutiesOf(personID)
	if len(all) == 0 {
		return nil, nil
	}
	var latest []model.AstronautDuty
	for _, d := range all {
		if d.DutyStartDate.Equal(all[0].DutyStartDate) {
			latest = append(latest, d)
		}
	}
	return latest, nil
}

func (m *mockDutyRepo) ExistsByTitleAndStart(_ context.Context, personID uint, dutyTitle string, start time.Time) (bool, error) {
	for _, d := range m.s.duties {
		if d.PersonID == personID && d.DutyTitle == dutyTitle && d.DutyStartDate.Equal(model.DateOf(start)) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDutyRepo) ListByPersonID(_ context.Context, personID uint) ([]model.AstronautDuty, error) {
	return m.s.dutiesOf(personID), nil
}

// ── Mock Publisher ──

type publishedEvent struct {
	key   string
	event any
}

type mockPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *mockPublisher) Publish(_ context.Context, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{key: key, event: event})
	return p.err
}

func (p *mockPublisher) Close() error { return nil }

func (p *mockPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, 0, len(p.events))
	for _, e := range p.events {
		keys = append(keys, e.key)
	}
	return keys
}
