package accounts

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/oops"

	"github.com/dmitrijs2005/dealhunter/internal/client/models"
	"github.com/dmitrijs2005/dealhunter/internal/common"
	"github.com/dmitrijs2005/dealhunter/internal/filex"
)

const fieldsPerRecord = 3

var _ Repository = (*FileRepository)(nil)

// FileRepository stores accounts in a CSV file at path.
type FileRepository struct {
	path string
}

// NewFileRepository returns a repository backed by the CSV file at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load reads every account from the file. A missing file yields an empty set.
func (r *FileRepository) Load(ctx context.Context) (*models.Accounts, error) {
	accounts := models.NewAccounts()

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return accounts, nil
		}
		return nil, oops.Code("ACCOUNTS_READ_FAILED").
			With("path", r.path).
			Wrap(fmt.Errorf("%w: %w", common.ErrStorage, err))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	// a stray quote inside an unquoted field is kept as a literal character
	reader.LazyQuotes = true

	for {
		if err := ctx.Err(); err != nil {
			return accounts, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return accounts, nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return accounts, oops.Code("ACCOUNTS_PARSE_FAILED").
					With("path", r.path).
					With("line", parseErr.Line).
					Wrap(fmt.Errorf("%w: %w", common.ErrStoreCorrupt, err))
			}
			return accounts, oops.Code("ACCOUNTS_READ_FAILED").
				With("path", r.path).
				Wrap(fmt.Errorf("%w: %w", common.ErrStorage, err))
		}

		if len(record) != fieldsPerRecord {
			continue
		}
		accounts.Put(models.Account{
			Email:        record[0],
			PasswordHash: record[1],
			Security:     record[2],
		})
	}
}

// Save replaces the file contents with accounts.
func (r *FileRepository) Save(ctx context.Context, accounts *models.Accounts) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := filex.EnsureParentDir(r.path); err != nil {
		return r.writeErr(err)
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return r.writeErr(err)
	}

	w := csv.NewWriter(f)
	w.UseCRLF = true
	for _, a := range accounts.All() {
		if err := w.Write([]string{a.Email, a.PasswordHash, a.Security}); err != nil {
			_ = f.Close()
			return r.writeErr(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return r.writeErr(err)
	}

	if err := f.Close(); err != nil {
		return r.writeErr(err)
	}
	return nil
}

func (r *FileRepository) writeErr(err error) error {
	return oops.Code("ACCOUNTS_WRITE_FAILED").
		With("path", r.path).
		Wrap(fmt.Errorf("%w: %w", common.ErrStorage, err))
}
