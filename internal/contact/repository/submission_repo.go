package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devfolio-app/portfolio-backend/internal/contact/domain"
)

const (
	subKeyPrefix = "contact:sub:" // Submission audit record: contact:sub:{id}
	dupKeyPrefix = "contact:dup:" // Duplicate-suppression marker: contact:dup:{sender_hash}
	subTTL       = 7 * 24 * time.Hour
)

// SubmissionRepo keeps a short-lived audit trail of accepted submissions in
// Redis and suppresses duplicates within a configurable window.
type SubmissionRepo struct {
	client *redis.Client
}

func NewSubmissionRepo(client *redis.Client) *SubmissionRepo {
	return &SubmissionRepo{client: client}
}

// Record stores the submission and arms the duplicate marker. It returns
// ErrDuplicateSubmission when the same sender+message was seen within the
// window.
func (r *SubmissionRepo) Record(ctx context.Context, sub domain.Submission, window time.Duration) error {
	dupKey := dupKeyPrefix + senderHash(sub)

	ok, err := r.client.SetNX(ctx, dupKey, sub.ID, window).Result()
	if err != nil {
		return fmt.Errorf("arm duplicate marker: %w", err)
	}
	if !ok {
		return domain.ErrDuplicateSubmission
	}

	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, subKeyPrefix+sub.ID, data, subTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store submission: %w", err)
	}

	return nil
}

// Forget releases the duplicate marker and audit record for a submission
// that was never delivered, so an immediate retry is not suppressed.
func (r *SubmissionRepo) Forget(ctx context.Context, sub domain.Submission) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, dupKeyPrefix+senderHash(sub))
	pipe.Del(ctx, subKeyPrefix+sub.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("release submission: %w", err)
	}
	return nil
}

// Get retrieves a stored submission by id.
func (r *SubmissionRepo) Get(ctx context.Context, id string) (*domain.Submission, error) {
	data, err := r.client.Get(ctx, subKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("submission %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}

	var sub domain.Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, fmt.Errorf("unmarshal submission: %w", err)
	}
	return &sub, nil
}

// senderHash fingerprints a submission by sender and message body so
// repeated sends of the same message collapse onto one marker.
func senderHash(sub domain.Submission) string {
	h := sha256.New()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(sub.Email))))
	h.Write([]byte{0})
	h.Write([]byte(strings.TrimSpace(sub.Message)))
	return hex.EncodeToString(h.Sum(nil))
}
