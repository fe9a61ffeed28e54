// Package memory is an in-process implementation of the repository
// interfaces used by tests. WithTx emulates the store's serializable
// transactions by holding the store lock for the whole callback and rolling
// the data back when it fails.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/revelve/revelve-backend/internal/models"
	repo "github.com/revelve/revelve-backend/internal/repository"
)

type Store struct {
	mu        sync.Mutex
	txns      []models.Transaction
	campaigns []models.Campaign
	posts     []models.Post
	audits    []models.AuditLog
}

func NewStore() *Store { return &Store{} }

func (s *Store) Ledger() repo.Ledger       { return &ledgerMem{s} }
func (s *Store) Campaigns() repo.Campaigns { return &campaignsMem{s} }
func (s *Store) Posts() repo.Posts         { return &postsMem{s} }
func (s *Store) AuditLogs() repo.AuditLogs { return &auditMem{s} }

// AddPost seeds a post (and its daily stats) as the external content
// pipeline would.
func (s *Store) AddPost(p models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.posts = append(s.posts, p)
}

func (s *Store) AuditEntries() []models.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AuditLog, len(s.audits))
	copy(out, s.audits)
	return out
}

func (s *Store) balanceLocked(userID string) int64 {
	var total int64
	for _, t := range s.txns {
		if t.UserID == userID {
			total += t.Signed()
		}
	}
	return total
}

// ---------------- ledger ----------------

type ledgerMem struct{ s *Store }

func fillTxn(t models.Transaction) models.Transaction {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	return t
}

func (l *ledgerMem) Insert(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	t = fillTxn(t)
	l.s.txns = append(l.s.txns, t)
	return t, nil
}

// InsertDebitGuarded runs inside WithTx, which already holds the lock.
func (l *ledgerMem) InsertDebitGuarded(ctx context.Context, tx pgx.Tx, t models.Transaction) (models.Transaction, error) {
	if l.s.balanceLocked(t.UserID) < t.CreditsValue {
		return models.Transaction{}, pgx.ErrNoRows
	}
	t.ExpenseType = models.ExpenseDebit
	t = fillTxn(t)
	l.s.txns = append(l.s.txns, t)
	return t, nil
}

func (l *ledgerMem) Balance(ctx context.Context, userID string) (int64, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return l.s.balanceLocked(userID), nil
}

func (l *ledgerMem) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	var out []models.Transaction
	for i := len(l.s.txns) - 1; i >= 0; i-- {
		if l.s.txns[i].UserID == userID {
			out = append(out, l.s.txns[i])
		}
	}
	return out, nil
}

func (l *ledgerMem) HasAny(ctx context.Context, userID string) (bool, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	for _, t := range l.s.txns {
		if t.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (l *ledgerMem) HasClaim(ctx context.Context, userID, code string) (bool, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	for _, t := range l.s.txns {
		if t.UserID == userID && t.Type == models.TxnClaimCode && t.Description == code {
			return true, nil
		}
	}
	return false, nil
}

func (l *ledgerMem) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	txns := make([]models.Transaction, len(l.s.txns))
	copy(txns, l.s.txns)
	campaigns := make([]models.Campaign, len(l.s.campaigns))
	copy(campaigns, l.s.campaigns)

	if err := fn(nil); err != nil {
		l.s.txns = txns
		l.s.campaigns = campaigns
		return err
	}
	return nil
}

// ---------------- campaigns ----------------

type campaignsMem struct{ s *Store }

// Create runs inside WithTx, which already holds the lock.
func (c *campaignsMem) Create(ctx context.Context, tx pgx.Tx, m models.Campaign) (models.Campaign, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	c.s.campaigns = append(c.s.campaigns, m)
	return m, nil
}

func (c *campaignsMem) GetByID(ctx context.Context, id string) (models.Campaign, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.getLocked(id)
}

func (c *campaignsMem) getLocked(id string) (models.Campaign, error) {
	for _, m := range c.s.campaigns {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Campaign{}, pgx.ErrNoRows
}

func (c *campaignsMem) ListByUser(ctx context.Context, userID string) ([]models.Campaign, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	var out []models.Campaign
	for i := len(c.s.campaigns) - 1; i >= 0; i-- {
		if c.s.campaigns[i].UserID == userID {
			out = append(out, c.s.campaigns[i])
		}
	}
	return out, nil
}

func (c *campaignsMem) UpdateDetails(ctx context.Context, m models.Campaign) (models.Campaign, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for i := range c.s.campaigns {
		if c.s.campaigns[i].ID == m.ID {
			cur := &c.s.campaigns[i]
			cur.Title = m.Title
			cur.Description = m.Description
			cur.Keywords = m.Keywords
			cur.Tone = m.Tone
			cur.Links = m.Links
			cur.UpdatedAt = time.Now()
			return *cur, nil
		}
	}
	return models.Campaign{}, pgx.ErrNoRows
}

func (c *campaignsMem) UpdateStatus(ctx context.Context, id string, status models.CampaignStatus) (models.Campaign, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for i := range c.s.campaigns {
		if c.s.campaigns[i].ID == id {
			c.s.campaigns[i].Status = status
			c.s.campaigns[i].UpdatedAt = time.Now()
			return c.s.campaigns[i], nil
		}
	}
	return models.Campaign{}, pgx.ErrNoRows
}

// SetSuperboost runs inside WithTx, which already holds the lock.
func (c *campaignsMem) SetSuperboost(ctx context.Context, tx pgx.Tx, id string, params models.SuperboostParams) (models.Campaign, error) {
	for i := range c.s.campaigns {
		if c.s.campaigns[i].ID == id && !c.s.campaigns[i].Superboost {
			p := params
			c.s.campaigns[i].Superboost = true
			c.s.campaigns[i].SuperboostParams = &p
			c.s.campaigns[i].UpdatedAt = time.Now()
			return c.s.campaigns[i], nil
		}
	}
	return models.Campaign{}, pgx.ErrNoRows
}

// ---------------- posts ----------------

type postsMem struct{ s *Store }

func (p *postsMem) ListByCampaign(ctx context.Context, campaignID string) ([]models.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	var out []models.Post
	for i := len(p.s.posts) - 1; i >= 0; i-- {
		if p.s.posts[i].CampaignID == campaignID {
			out = append(out, p.s.posts[i])
		}
	}
	return out, nil
}

func (p *postsMem) ListByUser(ctx context.Context, userID string) ([]models.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	owned := map[string]bool{}
	for _, c := range p.s.campaigns {
		if c.UserID == userID {
			owned[c.ID] = true
		}
	}
	var out []models.Post
	for i := len(p.s.posts) - 1; i >= 0; i-- {
		if owned[p.s.posts[i].CampaignID] {
			out = append(out, p.s.posts[i])
		}
	}
	return out, nil
}

// ---------------- audit ----------------

type auditMem struct{ s *Store }

func (a *auditMem) Create(ctx context.Context, l models.AuditLog) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = time.Now()
	a.s.audits = append(a.s.audits, l)
	return nil
}
