package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	expiresAt := time.Now().UTC().Add(24 * time.Hour)

	t.Run("saved tokens are valid", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "token-a", userID, expiresAt); err != nil {
			t.Fatalf("failed to save token: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !valid {
			t.Error("expected token to be valid")
		}
	})

	t.Run("unknown tokens are invalid", func(t *testing.T) {
		valid, err := repo.IsRefreshTokenValid(ctx, "never-issued")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected unknown token to be invalid")
		}
	})

	t.Run("invalidated tokens fail validation", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "token-b", userID, expiresAt); err != nil {
			t.Fatalf("failed to save token: %v", err)
		}
		if err := repo.InvalidateRefreshToken(ctx, "token-b"); err != nil {
			t.Fatalf("failed to invalidate token: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected invalidated token to fail validation")
		}
	})

	t.Run("invalidating all user tokens revokes every session", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "token-c", userID, expiresAt); err != nil {
			t.Fatalf("failed to save token: %v", err)
		}
		if err := repo.InvalidateAllUserRefreshTokens(ctx, userID); err != nil {
			t.Fatalf("failed to invalidate user tokens: %v", err)
		}

		for _, token := range []string{"token-a", "token-c"} {
			valid, err := repo.IsRefreshTokenValid(ctx, token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if valid {
				t.Errorf("expected %q to be invalid", token)
			}
		}
	})

	t.Run("expired tokens are purged", func(t *testing.T) {
		otherUser := uuid.New()
		stale := time.Now().UTC().Add(-48 * time.Hour)
		if err := repo.SaveRefreshToken(ctx, "token-old", otherUser, stale); err != nil {
			t.Fatalf("failed to save token: %v", err)
		}

		if err := repo.DeleteExpiredTokens(ctx, time.Now().UTC()); err != nil {
			t.Fatalf("failed to delete expired tokens: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-old")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected purged token to be invalid")
		}
	})
}
