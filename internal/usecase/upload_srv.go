package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const uploadErrMessage = "failed to upload cover image"

type UploadService interface {
	UploadCover(ctx context.Context, ownerID uuid.UUID, payload []byte, contentType, originalName string) (*response.UploadResponse, error)
}

type uploadService struct {
	store ObjectStore
	log   *zap.Logger
}

func NewUploadService(store ObjectStore, log *zap.Logger) UploadService {
	return &uploadService{
		store: store,
		log:   log.With(zap.String("service", "upload")),
	}
}

// UploadCover writes the payload requesting public-read access. Buckets
// with owner-enforced object ownership reject per-object ACLs; that one
// failure class gets a single retry without the ACL. Everything else is
// fatal immediately, surfaced as a generic internal failure.
func (s *uploadService) UploadCover(ctx context.Context, ownerID uuid.UUID, payload []byte, contentType, originalName string) (*response.UploadResponse, error) {
	key := fmt.Sprintf("users/%s/covers/%s", ownerID, generateObjectName(originalName))

	if err := s.store.Put(ctx, key, payload, contentType, true); err != nil {
		if !isACLUnsupported(err) {
			s.log.Error("Cover upload failed",
				zap.Error(err),
				zap.String("key", key),
			)
			return nil, apperr.Internal(uploadErrMessage, err)
		}

		s.log.Warn("Bucket rejected ACL, retrying without public-read",
			zap.Error(err),
			zap.String("key", key),
		)

		if err := s.store.Put(ctx, key, payload, contentType, false); err != nil {
			s.log.Error("Cover upload failed on ACL fallback",
				zap.Error(err),
				zap.String("key", key),
			)
			return nil, apperr.Internal(uploadErrMessage, err)
		}
	}

	url := s.store.PublicURL(key)

	s.log.Info("Cover uploaded",
		zap.String("owner_id", ownerID.String()),
		zap.String("key", key),
		zap.Int("size", len(payload)),
	)

	return &response.UploadResponse{Key: key, URL: url}, nil
}

// aclUnsupported is implemented by store errors carrying a structured
// ACL-rejection code from the backend.
type aclUnsupported interface {
	ACLUnsupported() bool
}

// isACLUnsupported prefers the structured classification from the store;
// the substring match is a last-resort fallback for backends that only
// report the condition in the message text.
func isACLUnsupported(err error) bool {
	var classified aclUnsupported
	if errors.As(err, &classified) {
		return classified.ACLUnsupported()
	}
	return strings.Contains(strings.ToUpper(err.Error()), "ACL")
}

const keySuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChars   = regexp.MustCompile(`[^a-z0-9\-.]`)
	hyphenRun     = regexp.MustCompile(`-+`)
	edgeTrim      = regexp.MustCompile(`^[-.]+|[-.]+$`)
)

// generateObjectName builds a collision-resistant object name from the
// upload timestamp, a random suffix and the sanitized original file name.
// No pre-existence check is needed.
func generateObjectName(originalName string) string {
	timestamp := time.Now().UnixMilli()

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = keySuffixAlphabet[rand.Intn(len(keySuffixAlphabet))]
	}

	return fmt.Sprintf("%d-%s-%s", timestamp, suffix, sanitizeFileName(originalName))
}

// sanitizeFileName reduces a client file name to storage-safe form:
// lower-case, whitespace runs to single hyphens, only [a-z0-9-.] kept,
// hyphen runs collapsed, leading/trailing hyphens and dots trimmed.
func sanitizeFileName(name string) string {
	s := strings.ToLower(name)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = unsafeChars.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = edgeTrim.ReplaceAllString(s, "")
	return s
}
