package feed

import (
	"context"
	"testing"
	"time"

	"espora/models"
	"espora/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, s *store.Memory, name string) string {
	t.Helper()
	id, err := s.InsertUser(context.Background(), &models.User{
		Name:         name,
		ProfilePhoto: "https://img.example/" + name + ".jpg",
		LikedPostIds: []string{},
		SavedPostIds: []string{},
	})
	require.NoError(t, err)
	return id
}

func seedPost(t *testing.T, s *store.Memory, userID string, createdAt time.Time) string {
	t.Helper()
	id, err := s.InsertPost(context.Background(), &models.Post{
		UserID:      userID,
		Title:       "obra",
		Description: "descripción",
		Imgs:        []string{},
		CreatedAt:   createdAt,
	})
	require.NoError(t, err)
	return id
}

func seedComent(t *testing.T, s *store.Memory, postID, userID, text string, createdAt time.Time) string {
	t.Helper()
	id, err := s.InsertComent(context.Background(), &models.Coment{
		PostID:    postID,
		UserID:    userID,
		Coment:    text,
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
	return id
}

func TestAssembleEmpty(t *testing.T) {
	a := NewAssembler(store.NewMemory())

	result, err := a.Assemble(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.Posts)
	assert.Empty(t, result.Users)
}

func TestAssembleOrdersAndCounts(t *testing.T) {
	s := store.NewMemory()
	a := NewAssembler(s)
	ctx := context.Background()

	author := seedUser(t, s, "Ana")
	commenter := seedUser(t, s, "Luis")

	base := time.Now()
	older := seedPost(t, s, author, base.Add(-2*time.Hour))
	newer := seedPost(t, s, author, base.Add(-1*time.Hour))

	seedComent(t, s, older, commenter, "primero", base.Add(-90*time.Minute))
	seedComent(t, s, older, author, "segundo", base.Add(-80*time.Minute))

	result, err := a.Assemble(ctx)
	require.NoError(t, err)
	require.Len(t, result.Posts, 2)

	// Newest post first.
	assert.Equal(t, newer, result.Posts[0].ID.Hex())
	assert.Equal(t, older, result.Posts[1].ID.Hex())

	// Comment count matches the comment list, comments oldest first.
	assert.Equal(t, 0, result.Posts[0].ComentCount)
	assert.Equal(t, 2, result.Posts[1].ComentCount)
	require.Len(t, result.Posts[1].Coments, 2)
	assert.Equal(t, "primero", result.Posts[1].Coments[0].Coment)
	assert.Equal(t, "segundo", result.Posts[1].Coments[1].Coment)

	// Each referenced user resolved once into the lookup table.
	assert.Len(t, result.Users, 2)
	assert.Equal(t, "Luis", result.Users[commenter].Name)
	assert.Equal(t, "Luis", result.Posts[1].Coments[0].Name)
}

func TestAssembleMissingAuthorPlaceholder(t *testing.T) {
	s := store.NewMemory()
	a := NewAssembler(s)
	ctx := context.Background()

	author := seedUser(t, s, "Ana")
	postID := seedPost(t, s, author, time.Now())
	seedComent(t, s, postID, "000000000000000000000099", "hola", time.Now())

	result, err := a.Assemble(ctx)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	require.Len(t, result.Posts[0].Coments, 1)

	got := result.Posts[0].Coments[0]
	assert.Equal(t, PlaceholderName, got.Name)
	assert.Equal(t, PlaceholderPhoto, got.ProfilePhoto)

	ghost := result.Users["000000000000000000000099"]
	assert.Equal(t, PlaceholderName, ghost.Name)
}

func TestResolvePostCommentTree(t *testing.T) {
	s := store.NewMemory()
	a := NewAssembler(s)
	ctx := context.Background()

	author := seedUser(t, s, "Ana")
	replier := seedUser(t, s, "Luis")
	postID := seedPost(t, s, author, time.Now())

	base := time.Now()
	seedComent(t, s, postID, author, "uno", base.Add(-2*time.Minute))
	second := seedComent(t, s, postID, author, "dos", base.Add(-1*time.Minute))

	_, err := s.InsertReply(ctx, &models.Reply{
		ComentID:  second,
		PostID:    postID,
		UserID:    replier,
		Coment:    "respuesta",
		CreatedAt: base,
	})
	require.NoError(t, err)

	post, err := a.ResolvePost(ctx, postID)
	require.NoError(t, err)

	require.Len(t, post.Coments, 2)
	assert.Equal(t, "uno", post.Coments[0].Coment)
	assert.Empty(t, post.Coments[0].Replys)

	require.Len(t, post.Coments[1].Replys, 1)
	assert.Equal(t, "respuesta", post.Coments[1].Replys[0].Coment)
	assert.Equal(t, "Luis", post.Coments[1].Replys[0].Name)
}

func TestResolvePostNotFound(t *testing.T) {
	a := NewAssembler(store.NewMemory())

	_, err := a.ResolvePost(context.Background(), "000000000000000000000001")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGalleryCapsAtNine(t *testing.T) {
	s := store.NewMemory()
	a := NewAssembler(s)
	ctx := context.Background()

	author := seedUser(t, s, "Ana")
	base := time.Now()

	// Two posts, six images each; newest post's images come first.
	for p := 0; p < 2; p++ {
		imgs := make([]string, 6)
		for i := range imgs {
			imgs[i] = "https://img.example/p" + string(rune('0'+p)) + "-" + string(rune('0'+i)) + ".jpg"
		}
		_, err := s.InsertPost(ctx, &models.Post{
			UserID:    author,
			Imgs:      imgs,
			CreatedAt: base.Add(time.Duration(p) * time.Hour),
		})
		require.NoError(t, err)
	}

	gallery, err := a.Gallery(ctx, author)
	require.NoError(t, err)
	assert.Len(t, gallery, 9)
	assert.Equal(t, "https://img.example/p1-0.jpg", gallery[0])
}

func TestGalleryEmptyUser(t *testing.T) {
	a := NewAssembler(store.NewMemory())

	gallery, err := a.Gallery(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, gallery)
}
