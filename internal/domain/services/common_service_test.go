package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/infrastructure/repositories"
)

func TestLetterheadLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewCommonService(repositories.NewLetterheadRepository(newTestRepository(t)), fixedClock)

	result, err := s.AddLetterhead(ctx, &contracts.LetterheadAddCommand{
		Number:         1,
		LetterheadData: contracts.LetterheadData{Name: "Privat", Line1: "Ole Sørensen", Line2: "Eggertsvej 30"},
	})
	require.NoError(t, err)
	assert.Equal(t, "1", result.Identifier)
	assert.Equal(t, testNow, result.EventDate)

	_, err = s.AddLetterhead(ctx, &contracts.LetterheadAddCommand{
		Number:         1,
		LetterheadData: contracts.LetterheadData{Name: "Igen", Line1: "Igen"},
	})
	requireCode(t, err, code.ErrLetterheadAlreadyExists)

	_, err = s.ModifyLetterhead(ctx, &contracts.LetterheadModifyCommand{
		Number:         1,
		LetterheadData: contracts.LetterheadData{Name: "Privat", Line1: "Ole Sørensen", CompanyNumber: "12345678"},
	})
	require.NoError(t, err)

	view, err := s.GetLetterhead(ctx, &contracts.LetterheadGetQuery{Number: 1})
	require.NoError(t, err)
	assert.Equal(t, "12345678", view.CompanyNumber)
	assert.Empty(t, view.Line2)

	list, err := s.GetLetterheads(ctx, &contracts.LetterheadListGetQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = s.GetLetterhead(ctx, &contracts.LetterheadGetQuery{Number: 2})
	requireCode(t, err, code.ErrLetterheadNotFound)
	_, err = s.ModifyLetterhead(ctx, &contracts.LetterheadModifyCommand{Number: 2})
	requireCode(t, err, code.ErrLetterheadNotFound)
}
