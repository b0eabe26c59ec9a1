package commentapp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weblog/internal/adapters/memory"
	"weblog/internal/core/moderation"
	postEntity "weblog/internal/core/post"
	userEntity "weblog/internal/core/user"
	commentPort "weblog/internal/ports/comment"
	postPort "weblog/internal/ports/post"
)

func newTestService(t *testing.T) (*CommentService, *userEntity.User, *userEntity.User, *postEntity.Post) {
	store := memory.NewStore()
	userRepo := memory.NewUserRepositoryMemory(store)
	postRepo := memory.NewPostRepositoryMemory(store)
	commentRepo := memory.NewCommentRepositoryMemory(store)

	alice := &userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: "alice"}
	bob := &userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: "bob"}
	for _, u := range []*userEntity.User{alice, bob} {
		_, err := userRepo.Create(u)
		require.NoError(t, err)
	}

	p := &postEntity.Post{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       "A post",
		Text:        "body",
		PubDate:     time.Now().Add(-time.Hour),
		IsPublished: true,
		AuthorID:    alice.ID,
	}
	_, err := postRepo.Create(context.Background(), p)
	require.NoError(t, err)

	svc := NewCommentService(commentRepo, postRepo, moderation.NewFilter([]string{"spam"}))
	return svc, alice, bob, p
}

func TestCreateComment(t *testing.T) {
	svc, _, bob, p := newTestService(t)
	ctx := context.Background()

	dto, err := svc.CreateComment(ctx, bob.ID.String(), p.ID.String(), "well said")
	require.NoError(t, err)
	assert.NotEmpty(t, dto.ID)
	assert.Equal(t, "well said", dto.Text)
	assert.Equal(t, "bob", dto.Author.Username)
	assert.Equal(t, p.ID.String(), dto.PostID)
}

func TestCreateComment_UnknownPost(t *testing.T) {
	svc, _, bob, _ := newTestService(t)

	_, err := svc.CreateComment(context.Background(), bob.ID.String(), uuid.Must(uuid.NewV4()).String(), "hello")
	assert.ErrorIs(t, err, postPort.ErrNotFound)
}

func TestCreateComment_BlockedWord(t *testing.T) {
	svc, _, bob, p := newTestService(t)

	_, err := svc.CreateComment(context.Background(), bob.ID.String(), p.ID.String(), "buy SPAM here")
	assert.ErrorIs(t, err, commentPort.ErrValidation)
}

func TestCreateComment_TooLong(t *testing.T) {
	svc, _, bob, p := newTestService(t)

	_, err := svc.CreateComment(context.Background(), bob.ID.String(), p.ID.String(), strings.Repeat("a", 257))
	assert.ErrorIs(t, err, commentPort.ErrValidation)
}

func TestCreateComment_LengthCountsCharacters(t *testing.T) {
	svc, _, bob, p := newTestService(t)
	ctx := context.Background()

	// Multibyte text within the 256-character limit is accepted even
	// though it exceeds 256 bytes.
	_, err := svc.CreateComment(ctx, bob.ID.String(), p.ID.String(), strings.Repeat("ы", 256))
	assert.NoError(t, err)

	_, err = svc.CreateComment(ctx, bob.ID.String(), p.ID.String(), strings.Repeat("ы", 257))
	assert.ErrorIs(t, err, commentPort.ErrValidation)
}

func TestUpdateComment_OwnerOnly(t *testing.T) {
	svc, alice, bob, p := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateComment(ctx, bob.ID.String(), p.ID.String(), "original")
	require.NoError(t, err)

	_, err = svc.UpdateComment(ctx, alice.ID.String(), created.ID, "defaced")
	require.ErrorIs(t, err, commentPort.ErrNotOwner)

	updated, err := svc.UpdateComment(ctx, bob.ID.String(), created.ID, "revised")
	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Text)
}

func TestDeleteComment_OwnerOnly(t *testing.T) {
	svc, alice, bob, p := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateComment(ctx, bob.ID.String(), p.ID.String(), "fleeting")
	require.NoError(t, err)

	err = svc.DeleteComment(ctx, alice.ID.String(), created.ID)
	require.ErrorIs(t, err, commentPort.ErrNotOwner)

	require.NoError(t, svc.DeleteComment(ctx, bob.ID.String(), created.ID))

	err = svc.DeleteComment(ctx, bob.ID.String(), created.ID)
	assert.ErrorIs(t, err, commentPort.ErrNotFound)
}
