package common_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revpilot-io/revpilot/internal/application/common"
)

type pingRequest struct{ Value string }

type pingHandler struct{}

func (pingHandler) Handle(_ context.Context, request common.Request) (common.Response, error) {
	return "pong:" + request.(*pingRequest).Value, nil
}

func TestMediator_Dispatch(t *testing.T) {
	// Arrange
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](m, pingHandler{}))

	// Act
	resp, err := m.Send(context.Background(), &pingRequest{Value: "x"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pong:x", resp)
}

func TestMediator_UnregisteredRequest(t *testing.T) {
	m := common.NewMediator()

	_, err := m.Send(context.Background(), &pingRequest{})

	assert.ErrorContains(t, err, "no handler registered")
}

func TestMediator_DuplicateRegistration(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](m, pingHandler{}))

	err := common.RegisterHandler[*pingRequest](m, pingHandler{})

	assert.ErrorContains(t, err, "already registered")
}

func TestMediator_NilRequest(t *testing.T) {
	m := common.NewMediator()

	_, err := m.Send(context.Background(), nil)

	assert.ErrorContains(t, err, "cannot be nil")
}
