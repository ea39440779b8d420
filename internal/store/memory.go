package store

import (
	"sort"
	"sync"

	"hunthub/internal/models"
)

// Memory is an in-process implementation of all three repositories. It backs
// the test suite; the mutex gives it the same atomicity the Postgres store
// gets from its transaction and unique index.
type Memory struct {
	mu          sync.Mutex
	users       map[uint]models.User
	products    map[uint]models.Product
	votes       map[[2]uint]models.Vote
	nextUser    uint
	nextProduct uint
	nextVote    uint
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[uint]models.User),
		products: make(map[uint]models.Product),
		votes:    make(map[[2]uint]models.Vote),
	}
}

func (m *Memory) Create(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return ErrConflict
		}
	}
	m.nextUser++
	user.ID = m.nextUser
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) ByID(id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *Memory) ByUsername(username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// Users returns a UserRepository view of the store.
func (m *Memory) Users() UserRepository { return m }

// Products returns a ProductRepository view of the store.
func (m *Memory) Products() ProductRepository { return (*memoryProducts)(m) }

// Votes returns a VoteRepository view of the store.
func (m *Memory) Votes() VoteRepository { return (*memoryVotes)(m) }

type memoryProducts Memory

func (m *memoryProducts) Create(product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextProduct++
	product.ID = m.nextProduct
	if hunter, ok := m.users[product.HunterID]; ok {
		product.Hunter = hunter
	}
	m.products[product.ID] = *product
	return nil
}

func (m *memoryProducts) ByID(id uint) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *memoryProducts) Page(offset, limit int) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].VotesTotal != all[j].VotesTotal {
			return all[i].VotesTotal > all[j].VotesTotal
		}
		return all[i].PubDate.After(all[j].PubDate)
	})
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *memoryProducts) Count() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.products)), nil
}

type memoryVotes Memory

func (m *memoryVotes) Record(userID, productID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]uint{userID, productID}
	if _, ok := m.votes[key]; ok {
		return ErrConflict
	}
	p, ok := m.products[productID]
	if !ok {
		return ErrNotFound
	}
	m.nextVote++
	m.votes[key] = models.Vote{ID: m.nextVote, UserID: userID, ProductID: productID}
	p.VotesTotal++
	m.products[productID] = p
	return nil
}

func (m *memoryVotes) Exists(userID, productID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.votes[[2]uint{userID, productID}]
	return ok, nil
}
