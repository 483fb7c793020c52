package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"minimart/internal/apperr"
	"minimart/internal/model"
)

// credentialHeader is the first line of the credential file. It is written
// once by the seeder and skipped on every read; appends never rewrite it.
var credentialHeader = []string{"id", "username", "password"}

// CredentialRepository defines the data access contract for credentials.
// Services depend on this interface, not on the concrete file-backed
// implementation, enabling clean unit testing via stubs.
type CredentialRepository interface {
	All() ([]model.Credential, error)
	// FindByUsername scans all records and returns the LAST match, so a
	// later signup shadows an earlier duplicate in legacy files.
	FindByUsername(username string) (model.Credential, error)
	// Append assigns the next sequential id and appends one record without
	// touching the header.
	Append(username, password string) (model.Credential, error)
	// UpdateByID rewrites the whole file with the matching record replaced.
	UpdateByID(id, username, password string) error
}

type credentialRepo struct{ path string }

func NewCredentialRepository(path string) CredentialRepository {
	return &credentialRepo{path: path}
}

func (r *credentialRepo) All() ([]model.Credential, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", apperr.ErrStorageUnavailable, r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", apperr.ErrStorageUnavailable, r.path, err)
	}

	var creds []model.Credential
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue // header or short row
		}
		creds = append(creds, model.Credential{ID: row[0], Username: row[1], Password: row[2]})
	}
	return creds, nil
}

func (r *credentialRepo) FindByUsername(username string) (model.Credential, error) {
	creds, err := r.All()
	if err != nil {
		return model.Credential{}, err
	}

	found := false
	var match model.Credential
	for _, c := range creds {
		if c.Username == username {
			match = c
			found = true
		}
	}
	if !found {
		return model.Credential{}, apperr.ErrNotFound
	}
	return match, nil
}

func (r *credentialRepo) Append(username, password string) (model.Credential, error) {
	creds, err := r.All()
	if err != nil {
		return model.Credential{}, err
	}

	cred := model.Credential{
		ID:       strconv.Itoa(len(creds) + 1),
		Username: username,
		Password: password,
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return model.Credential{}, fmt.Errorf("%w: append %s: %v", apperr.ErrStorageUnavailable, r.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{cred.ID, cred.Username, cred.Password}); err != nil {
		return model.Credential{}, fmt.Errorf("%w: write %s: %v", apperr.ErrStorageUnavailable, r.path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return model.Credential{}, fmt.Errorf("%w: flush %s: %v", apperr.ErrStorageUnavailable, r.path, err)
	}
	return cred, nil
}

func (r *credentialRepo) UpdateByID(id, username, password string) error {
	creds, err := r.All()
	if err != nil {
		return err
	}

	replaced := false
	for i, c := range creds {
		if c.ID == id {
			creds[i].Username = username
			creds[i].Password = password
			replaced = true
		}
	}
	if !replaced {
		return apperr.ErrNotFound
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("%w: rewrite %s: %v", apperr.ErrStorageUnavailable, r.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(credentialHeader); err != nil {
		return fmt.Errorf("%w: rewrite %s: %v", apperr.ErrStorageUnavailable, r.path, err)
	}
	for _, c := range creds {
		if err := w.Write([]string{c.ID, c.Username, c.Password}); err != nil {
			return fmt.Errorf("%w: rewrite %s: %v", apperr.ErrStorageUnavailable, r.path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: rewrite %s: %v", apperr.ErrStorageUnavailable, r.path, err)
	}
	return nil
}
