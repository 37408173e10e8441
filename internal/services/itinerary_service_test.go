package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ohrid/internal/models/request_models"
	"ohrid/internal/planner"
	"ohrid/pkg/utils"
)

type firstPick struct{}

func (firstPick) IntN(int) int { return 0 }

func newTestItineraryService(t *testing.T) (ItineraryServiceInterface, *planner.Editor) {
	t.Helper()
	editor, _ := newTestEditor(t)
	svc := NewItineraryService(planner.NewRecommender(firstPick{}), editor, newTestCatalogService(t), skopje(t), zap.NewNop())
	return svc, editor
}

func TestItineraryService_Options(t *testing.T) {
	svc, _ := newTestItineraryService(t)

	opts := svc.Options()
	assert.Equal(t, 3, opts.MaxInterests)
	assert.Equal(t, []string{planner.TemplateFullDay, planner.TemplateMorning, planner.TemplateAfternoon, planner.TemplateEvening}, opts.Templates)
	assert.Len(t, opts.Interests, 7)
	assert.Len(t, opts.Companies, 4)
}

func TestItineraryService_WizardFlow(t *testing.T) {
	svc, editor := newTestItineraryService(t)
	ctx := context.Background()

	_, err := svc.Generate(ctx)
	assert.ErrorIs(t, err, utils.ErrInvalidSessionState)

	s, err := svc.Start()
	require.NoError(t, err)
	assert.Equal(t, planner.StateSelecting, s.State)

	_, err = svc.Select(request_models.SelectionRequest{Interests: []string{"Nature", "Food & Wine", "Nightlife", "Shopping"}})
	assert.ErrorIs(t, err, utils.ErrIncompleteSelection)

	_, err = svc.Select(request_models.SelectionRequest{Interests: []string{"Nightlife"}, Company: "Friends"})
	require.NoError(t, err)
	_, err = svc.Generate(ctx)
	assert.ErrorIs(t, err, utils.ErrIncompleteSelection)

	_, err = svc.Select(request_models.SelectionRequest{Interests: []string{"Nightlife", "Food & Wine"}, Company: "Friends", Template: planner.TemplateEvening})
	require.NoError(t, err)
	s, err = svc.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, planner.StateGenerated, s.State)
	require.Len(t, s.Suggestions, 2)
	assert.Equal(t, "Dinner at Old Bazaar Grill", s.Suggestions[0].Text)
	assert.Equal(t, "nightlife", s.Suggestions[1].Type)

	// accept, then toggle the same venue back out
	res, err := svc.ToggleSuggestion(ctx, 1, "2024-07-01")
	require.NoError(t, err)
	assert.True(t, res.Added)
	assert.Equal(t, "Nightlife", res.Item.ActivityType)
	assert.Equal(t, 5, *res.Item.VenueID)

	res, err = svc.ToggleSuggestion(ctx, 1, "2024-07-01")
	require.NoError(t, err)
	assert.False(t, res.Added)
	assert.Empty(t, editor.Store().Items("2024-07-01"))

	_, err = svc.ToggleSuggestion(ctx, 9, "2024-07-01")
	assert.ErrorIs(t, err, utils.ErrSuggestionNotFound)
	_, err = svc.ToggleSuggestion(ctx, 0, "01-07-2024")
	assert.ErrorIs(t, err, utils.ErrInvalidDate)

	s = svc.StartOver()
	assert.Equal(t, planner.StateIdle, s.State)
	assert.Empty(t, s.Suggestions)
}

func TestItineraryService_ToggleSortsByTime(t *testing.T) {
	svc, editor := newTestItineraryService(t)
	ctx := context.Background()

	_, err := svc.Start()
	require.NoError(t, err)
	_, err = svc.Select(request_models.SelectionRequest{Interests: []string{"History & Culture"}, Company: "Family", Template: planner.TemplateFullDay})
	require.NoError(t, err)
	s, err := svc.Generate(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(s.Suggestions), 2)

	last := len(s.Suggestions) - 1
	_, err = svc.ToggleSuggestion(ctx, last, "2024-08-15")
	require.NoError(t, err)
	_, err = svc.ToggleSuggestion(ctx, 0, "2024-08-15")
	require.NoError(t, err)

	items := editor.Store().Items("2024-08-15")
	require.Len(t, items, 2)
	assert.Equal(t, s.Suggestions[0].Time, items[0].Time)
	assert.Equal(t, s.Suggestions[last].Time, items[1].Time)
}

func TestItineraryService_EmptyCatalogInfoEntryIsNotAcceptable(t *testing.T) {
	editor, _ := newTestEditor(t)
	cs := NewCatalogService(stubSource{}, zap.NewNop())
	svc := NewItineraryService(planner.NewRecommender(firstPick{}), editor, cs, skopje(t), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Start()
	require.NoError(t, err)
	_, err = svc.Select(request_models.SelectionRequest{Interests: []string{"Nature"}, Company: "Solo", Template: planner.TemplateAfternoon})
	require.NoError(t, err)
	s, err := svc.Generate(ctx)
	require.NoError(t, err)
	require.Len(t, s.Suggestions, 1)
	assert.Equal(t, planner.NoPlanType, s.Suggestions[0].Type)

	_, err = svc.ToggleSuggestion(ctx, 0, "2024-07-01")
	assert.ErrorIs(t, err, utils.ErrSuggestionNotAcceptable)
}
