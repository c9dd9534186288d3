package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riyal-rj/Microservices-GRPC/internal/common"
	"github.com/riyal-rj/Microservices-GRPC/internal/logging"
	"github.com/riyal-rj/Microservices-GRPC/internal/userservice/models"
	"github.com/riyal-rj/Microservices-GRPC/internal/userservice/store"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type failingRepo struct {
	err error
}

func (f *failingRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	return nil, f.err
}
func (f *failingRepo) Get(ctx context.Context, id string) (*models.User, error) {
	return nil, f.err
}
func (f *failingRepo) List(ctx context.Context) ([]*models.User, error) {
	return nil, f.err
}

func newService(t *testing.T) (*Service, *store.MemoryRepository) {
	t.Helper()
	repo := store.NewMemoryRepository()
	return New(repo, nopLogger{}), repo
}

func TestCreateUser_OK(t *testing.T) {
	s, repo := newService(t)

	before := time.Now().UTC()
	u, err := s.CreateUser(context.Background(), "Alex", "Riga")
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}

	if u.ID == "" {
		t.Fatal("expected a generated id")
	}
	if u.Name != "Alex" || u.Address != "Riga" {
		t.Fatalf("unexpected record: %+v", u)
	}
	if u.CreatedAt.Before(before) || u.CreatedAt.After(time.Now().UTC()) {
		t.Fatalf("creation time not stamped at call time: %v", u.CreatedAt)
	}
	if repo.Len() != 1 {
		t.Fatalf("want 1 stored record, got %d", repo.Len())
	}
}

func TestCreateUser_GeneratesDistinctIDs(t *testing.T) {
	s, _ := newService(t)

	a, err := s.CreateUser(context.Background(), "Alex", "Riga")
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	b, err := s.CreateUser(context.Background(), "Bea", "Oslo")
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("ids collide: %q", a.ID)
	}
}

func TestCreateUser_MissingFields(t *testing.T) {
	s, repo := newService(t)

	tests := []struct {
		name    string
		address string
	}{
		{"", "Riga"},
		{"Alex", ""},
		{"", ""},
	}

	for _, tc := range tests {
		_, err := s.CreateUser(context.Background(), tc.name, tc.address)
		if !errors.Is(err, common.ErrInvalidArgument) {
			t.Fatalf("name=%q address=%q: want ErrInvalidArgument, got %v", tc.name, tc.address, err)
		}
	}
	if repo.Len() != 0 {
		t.Fatalf("rejected input must not be stored, have %d records", repo.Len())
	}
}

func TestGetUser_EmptyID(t *testing.T) {
	s, _ := newService(t)

	_, err := s.GetUser(context.Background(), "")
	if !errors.Is(err, common.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	s, _ := newService(t)

	_, err := s.GetUser(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCreateUser_RepoError(t *testing.T) {
	repoErr := errors.New("db is down")
	s := New(&failingRepo{err: repoErr}, nopLogger{})

	_, err := s.CreateUser(context.Background(), "Alex", "Riga")
	if !errors.Is(err, repoErr) {
		t.Fatalf("want wrapped repo error, got %v", err)
	}
}

func TestListUsers_InsertionOrder(t *testing.T) {
	s, _ := newService(t)

	first, _ := s.CreateUser(context.Background(), "Alex", "Riga")
	second, _ := s.CreateUser(context.Background(), "Bea", "Oslo")

	users, err := s.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if len(users) != 2 || users[0].ID != first.ID || users[1].ID != second.ID {
		t.Fatalf("unexpected listing: %+v", users)
	}
}
