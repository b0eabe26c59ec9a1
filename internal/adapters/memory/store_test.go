package memory

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commentEntity "weblog/internal/core/comment"
	locationEntity "weblog/internal/core/location"
	postEntity "weblog/internal/core/post"
	userEntity "weblog/internal/core/user"
	commentPort "weblog/internal/ports/comment"
	postPort "weblog/internal/ports/post"
)

func TestUserDelete_Cascades(t *testing.T) {
	store := NewStore()
	users := NewUserRepositoryMemory(store)
	posts := NewPostRepositoryMemory(store)
	comments := NewCommentRepositoryMemory(store)
	ctx := context.Background()

	alice := &userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: "alice"}
	bob := &userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: "bob"}
	for _, u := range []*userEntity.User{alice, bob} {
		_, err := users.Create(u)
		require.NoError(t, err)
	}

	alicePost := &postEntity.Post{ID: uuid.Must(uuid.NewV4()), Title: "by alice", Text: "t", PubDate: time.Now(), IsPublished: true, AuthorID: alice.ID}
	bobPost := &postEntity.Post{ID: uuid.Must(uuid.NewV4()), Title: "by bob", Text: "t", PubDate: time.Now(), IsPublished: true, AuthorID: bob.ID}
	for _, p := range []*postEntity.Post{alicePost, bobPost} {
		_, err := posts.Create(ctx, p)
		require.NoError(t, err)
	}

	// Bob comments on alice's post; alice comments on bob's post.
	bobComment := &commentEntity.Comment{ID: uuid.Must(uuid.NewV4()), Text: "hi", AuthorID: bob.ID, PostID: alicePost.ID}
	aliceComment := &commentEntity.Comment{ID: uuid.Must(uuid.NewV4()), Text: "yo", AuthorID: alice.ID, PostID: bobPost.ID}
	for _, c := range []*commentEntity.Comment{bobComment, aliceComment} {
		_, err := comments.Create(ctx, c)
		require.NoError(t, err)
	}

	require.NoError(t, users.Delete(alice.ID.String()))

	// Alice's post is gone, and with it bob's comment on it.
	_, err := posts.FindByID(ctx, alicePost.ID.String())
	assert.ErrorIs(t, err, postPort.ErrNotFound)
	_, err = comments.FindByID(ctx, bobComment.ID.String())
	assert.ErrorIs(t, err, commentPort.ErrNotFound)

	// Alice's comment on bob's surviving post is gone too.
	_, err = comments.FindByID(ctx, aliceComment.ID.String())
	assert.ErrorIs(t, err, commentPort.ErrNotFound)
	_, err = posts.FindByID(ctx, bobPost.ID.String())
	assert.NoError(t, err)
}

func TestPostUpdate_RejectsBadFieldMap(t *testing.T) {
	store := NewStore()
	users := NewUserRepositoryMemory(store)
	posts := NewPostRepositoryMemory(store)
	ctx := context.Background()

	alice := &userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: "alice"}
	_, err := users.Create(alice)
	require.NoError(t, err)

	p := &postEntity.Post{ID: uuid.Must(uuid.NewV4()), Title: "stable", Text: "t", PubDate: time.Now(), IsPublished: true, AuthorID: alice.ID}
	_, err = posts.Create(ctx, p)
	require.NoError(t, err)

	// A mistyped value or an unknown column fails instead of panicking.
	err = posts.Update(ctx, p.ID.String(), map[string]interface{}{"title": 42})
	assert.Error(t, err)
	err = posts.Update(ctx, p.ID.String(), map[string]interface{}{"author_id": alice.ID})
	assert.Error(t, err)
}

func TestLocationDelete_NullsPostReference(t *testing.T) {
	store := NewStore()
	users := NewUserRepositoryMemory(store)
	posts := NewPostRepositoryMemory(store)
	locations := NewLocationRepositoryMemory(store)
	ctx := context.Background()

	alice := &userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: "alice"}
	_, err := users.Create(alice)
	require.NoError(t, err)

	loc := &locationEntity.Location{ID: uuid.Must(uuid.NewV4()), Name: "Amsterdam", IsPublished: true}
	_, err = locations.Create(ctx, loc)
	require.NoError(t, err)

	p := &postEntity.Post{ID: uuid.Must(uuid.NewV4()), Title: "placed", Text: "t", PubDate: time.Now(), IsPublished: true, AuthorID: alice.ID, LocationID: &loc.ID}
	_, err = posts.Create(ctx, p)
	require.NoError(t, err)

	require.NoError(t, locations.Delete(ctx, loc.ID.String()))

	loaded, err := posts.FindByID(ctx, p.ID.String())
	require.NoError(t, err)
	assert.Nil(t, loaded.LocationID)
	assert.Nil(t, loaded.Location)
}
