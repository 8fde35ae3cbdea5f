package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arenacast/backend/internal/config"
	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestProfileRepo(t *testing.T) (*profileRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &profileRepository{
		db: &DB{
			DB:              db,
			engine:          config.EnginePostgres,
			errorClassifier: NewPostgresErrorClassifier(),
			logger:          l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestGetProfile_Success(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"user_id", "name", "bio", "gamer_tag", "privacy_mode", "created_at", "updated_at"}).
		AddRow("caller-1", "Night Hawk", "mid laner", "night_hawk", "ghost", now, now)

	mock.ExpectQuery("SELECT .+ FROM profiles").
		WithArgs("caller-1").
		WillReturnRows(rows)

	profile, err := repo.GetProfile(context.Background(), "caller-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name != "Night Hawk" {
		t.Errorf("unexpected name: %s", profile.Name)
	}
	if profile.GamerTag != "night_hawk" {
		t.Errorf("unexpected gamer tag: %s", profile.GamerTag)
	}
	if profile.Privacy.Mode != models.PrivacyModeGhost {
		t.Errorf("unexpected privacy mode: %s", profile.Privacy.Mode)
	}
}

func TestGetProfile_NullGamerTag(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"user_id", "name", "bio", "gamer_tag", "privacy_mode", "created_at", "updated_at"}).
		AddRow("caller-1", "Night Hawk", "", nil, "off", now, now)

	mock.ExpectQuery("SELECT .+ FROM profiles").
		WillReturnRows(rows)

	profile, err := repo.GetProfile(context.Background(), "caller-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.GamerTag != "" {
		t.Errorf("expected empty gamer tag, got %q", profile.GamerTag)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM profiles").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProfile(context.Background(), "missing")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	tag := "night_hawk"
	mode := models.PrivacyModeGhost

	mock.ExpectExec("UPDATE profiles").
		WithArgs("Night Hawk", "mid laner", sqlmock.AnyArg(), tag, string(mode), "caller-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProfile(context.Background(), "caller-1", models.ProfileUpdate{
		Name:        "Night Hawk",
		Bio:         "mid laner",
		GamerTag:    &tag,
		PrivacyMode: &mode,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateProfile_OmittedFieldsAreNotWritten(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	// Only name, bio, and updated_at appear as arguments when the gamer tag
	// and privacy mode are omitted.
	mock.ExpectExec("UPDATE profiles").
		WithArgs("Night Hawk", "", sqlmock.AnyArg(), "caller-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProfile(context.Background(), "caller-1", models.ProfileUpdate{Name: "Night Hawk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateProfile_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	tag := "pro_gamer"
	mock.ExpectExec("UPDATE profiles").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.UpdateProfile(context.Background(), "caller-2", models.ProfileUpdate{Name: "B", GamerTag: &tag})
	if !errors.Is(err, ErrGamerTagTaken) {
		t.Fatalf("expected ErrGamerTagTaken, got %v", err)
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE profiles").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProfile(context.Background(), "missing", models.ProfileUpdate{Name: "A"})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestUpdateProfile_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE profiles").
		WillReturnError(errors.New("db network error"))

	err := repo.UpdateProfile(context.Background(), "caller-1", models.ProfileUpdate{Name: "A"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected wrapped ErrExecutingStatement, got %v", err)
	}
	if errors.Is(err, ErrGamerTagTaken) {
		t.Fatal("generic failure must not be reported as a tag conflict")
	}
}
