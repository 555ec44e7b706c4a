package grpc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
		msg  string
	}{
		{fmt.Errorf("%w: title is required", common.ErrValidation), codes.InvalidArgument, "validation error: title is required"},
		{common.ErrInvalidOptions, codes.InvalidArgument, "invalid generation options"},
		{common.ErrInvalidCategory, codes.InvalidArgument, "invalid category"},
		{common.ErrDuplicateTitle, codes.AlreadyExists, "title already exists"},
		{common.ErrEmailTaken, codes.Internal, "internal error"},
		{common.ErrorNotFound, codes.NotFound, "not found"},
		{common.ErrTokenExpired, codes.Unauthenticated, "token expired"},
		{common.ErrInvalidToken, codes.Unauthenticated, "unauthorized"},
		{common.ErrorUnauthorized, codes.Unauthenticated, "unauthorized"},
		{common.ErrDecryption, codes.Internal, "internal error"},
		{fmt.Errorf("db error: %w", errors.New("connection reset")), codes.Internal, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			st := status.Convert(toStatus(tt.err))
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}
