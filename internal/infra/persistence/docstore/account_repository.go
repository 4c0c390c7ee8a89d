// Package docstore implements the account store on a gocloud.dev document collection.
package docstore

import (
	"context"
	"io"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/docstore"
	"gocloud.dev/gcerrors"
)

// KeyField is the document field the collection is keyed by.
const KeyField = "id"

// accountDocument is the persisted shape of an account in the users collection.
type accountDocument struct {
	ID        string    `docstore:"id"`
	Username  string    `docstore:"username"`
	Email     string    `docstore:"email"`
	Password  string    `docstore:"password"`
	Image     string    `docstore:"image"` // empty when absent
	CreatedAt time.Time `docstore:"createdAt"`
	UpdatedAt time.Time `docstore:"updatedAt"`
}

type accountRepository struct {
	coll *docstore.Collection
	now  func() time.Time
}

// NewAccountRepository returns an AccountRepository backed by coll.
// Documents are keyed by account ID. The collection has no unique index on email,
// so uniqueness is checked with a query before each write and is not atomic.
func NewAccountRepository(coll *docstore.Collection) repository.AccountRepository {
	return &accountRepository{
		coll: coll,
		now:  time.Now,
	}
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	doc, err := repo.findDocByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return toAccountDomain(doc)
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := repo.ensureEmailAvailable(ctx, account.Email, account.ID); err != nil {
		return err
	}

	now := repo.now().UTC()
	doc := fromAccountDomain(account)
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if err := repo.coll.Create(ctx, doc); err != nil {
		if gcerrors.Code(err) == gcerrors.AlreadyExists {
			return errors.Wrap(repository.ErrAccountAlreadyExists, "account id already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = now
	account.UpdatedAt = now

	return nil
}

func (repo *accountRepository) Save(ctx context.Context, account *entity.Account) error {
	if err := repo.ensureEmailAvailable(ctx, account.Email, account.ID); err != nil {
		return err
	}

	doc := fromAccountDomain(account)
	doc.UpdatedAt = repo.now().UTC()

	if err := repo.coll.Replace(ctx, doc); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save account")
	}

	account.UpdatedAt = doc.UpdatedAt

	return nil
}

// ensureEmailAvailable fails when email belongs to an account other than owner.
func (repo *accountRepository) ensureEmailAvailable(ctx context.Context, email string, owner uuid.UUID) error {
	doc, err := repo.findDocByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if doc.ID != owner.String() {
		return errors.Wrap(repository.ErrAccountAlreadyExists, "email already exists")
	}

	return nil
}

func (repo *accountRepository) findDocByEmail(ctx context.Context, email string) (*accountDocument, error) {
	iter := repo.coll.Query().
		Where("email", "=", email).
		Limit(1).
		Get(ctx)
	defer iter.Stop()

	var doc accountDocument
	if err := iter.Next(ctx, &doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by email")
	}

	return &doc, nil
}

func toAccountDomain(doc *accountDocument) (*entity.Account, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "stored account has a malformed id")
	}

	return &entity.Account{
		ID:           id,
		Username:     doc.Username,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		Image:        doc.Image,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func fromAccountDomain(account *entity.Account) *accountDocument {
	return &accountDocument{
		ID:        account.ID.String(),
		Username:  account.Username,
		Email:     account.Email,
		Password:  account.PasswordHash,
		Image:     account.Image,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
