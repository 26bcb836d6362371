//go:build unit

package review_test

import (
	"strings"
	"testing"

	"storeslot/internal/domain/review"
	"storeslot/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Great food and friendly staff, would come back.", actual.Content().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "negative rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(-1) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("content validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum length content",
				mutate: func(b *builder.ReviewBuilder) { b.WithContent(strings.Repeat("a", review.MinContentLength)) },
			},
			{
				name:   "one below minimum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithContent(strings.Repeat("a", review.MinContentLength-1)) },
				errIs:  review.ErrContentTooShort,
			},
			{
				name:   "maximum length content",
				mutate: func(b *builder.ReviewBuilder) { b.WithContent(strings.Repeat("a", review.MaxContentLength)) },
			},
			{
				name:   "one above maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithContent(strings.Repeat("a", review.MaxContentLength+1)) },
				errIs:  review.ErrContentTooLong,
			},
			{
				name:   "empty content",
				mutate: func(b *builder.ReviewBuilder) { b.WithContent("") },
				errIs:  review.ErrContentTooShort,
			},
			{
				// Length is measured in runes, not bytes.
				name:   "multibyte content at maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithContent(strings.Repeat("あ", review.MaxContentLength)) },
			},
			{
				name:   "multibyte content above maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithContent(strings.Repeat("あ", review.MaxContentLength+1)) },
				errIs:  review.ErrContentTooLong,
			},
		})
	})

	t.Run("edit replaces content and rating", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		content, err := review.NewContent("Second visit was even better.")
		require.NoError(t, err)
		rating, err := review.NewRating(4)
		require.NoError(t, err)

		rev.Edit(content, rating)

		assert.Equal(t, "Second visit was even better.", rev.Content().String())
		assert.Equal(t, 4, rev.Rating().Value())
	})

	t.Run("authorship", func(t *testing.T) {
		authorID := uuid.New()
		rev, err := builder.NewReviewBuilder().WithUserID(authorID).BuildDomain()
		require.NoError(t, err)

		assert.True(t, rev.IsAuthoredBy(authorID))
		assert.False(t, rev.IsAuthoredBy(uuid.New()))
	})

	t.Run("deletion permission", func(t *testing.T) {
		authorID := uuid.New()
		storeOwnerID := uuid.New()
		rev, err := builder.NewReviewBuilder().WithUserID(authorID).BuildDomain()
		require.NoError(t, err)

		assert.True(t, rev.CanBeDeletedBy(authorID, storeOwnerID), "author can delete")
		assert.True(t, rev.CanBeDeletedBy(storeOwnerID, storeOwnerID), "store owner can delete")
		assert.False(t, rev.CanBeDeletedBy(uuid.New(), storeOwnerID), "third party cannot delete")
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReviewBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
