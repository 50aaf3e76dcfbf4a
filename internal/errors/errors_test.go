package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/wargame-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "invalid notation",
			code:     errors.CodeInvalidArgument,
			message:  "invalid dice notation",
			expected: "INVALID_ARGUMENT: invalid dice notation",
		},
		{
			name:     "zero sided die",
			code:     errors.CodeOutOfRange,
			message:  "dice must have at least one side",
			expected: "OUT_OF_RANGE: dice must have at least one side",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to record roll")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to record roll", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Equal("INTERNAL: failed to record roll: connection refused", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.OutOfRange("dice must have at least one side").WithMeta("notation", "3d0")
	wrapped := errors.Wrapf(baseErr, "failed to roll %s", "3d0")

	s.Equal(errors.CodeOutOfRange, wrapped.Code)
	s.Equal("failed to roll 3d0", wrapped.Message)
	s.Equal("3d0", errors.GetMeta(wrapped)["notation"])
	s.True(errors.IsOutOfRange(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("session missing")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeFailedPrecondition, "roll first")

	s.Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Equal(errors.CodeNotFound, baseErr.Code)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestWrapCopiesMeta() {
	baseErr := errors.NotFound("session missing").WithMeta("entity_id", "model_1")
	wrapped := errors.Wrap(baseErr, "lookup failed").WithMeta("context", "turn_1")

	s.Equal("turn_1", errors.GetMeta(wrapped)["context"])
	s.NotContains(baseErr.Meta, "context")
}

func (s *ErrorsTestSuite) TestHasReason() {
	tagged := errors.InvalidArgument("bad notation").WithReason("invalid_notation")

	s.True(errors.HasReason(tagged, errors.CodeInvalidArgument, "invalid_notation"))
	s.True(errors.HasReason(errors.Wrap(tagged, "outer"), errors.CodeInvalidArgument, "invalid_notation"))
	s.False(errors.HasReason(tagged, errors.CodeOutOfRange, "invalid_notation"))
	s.False(errors.HasReason(tagged, errors.CodeInvalidArgument, "invalid_range"))
	s.False(errors.HasReason(errors.InvalidArgument("entity ID is required"), errors.CodeInvalidArgument, "invalid_notation"))
	s.False(errors.HasReason(fmt.Errorf("plain"), errors.CodeInternal, "invalid_notation"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgumentf("bad %s", "x")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Equal("", errors.GetMessage(nil))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Equal("outer", errors.GetMessage(errors.Wrap(errors.NotFound("inner"), "outer")))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.InvalidArgument("invalid dice notation").
		WithMeta("notation", "20abcd5").
		WithReason("invalid_notation")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Equal("invalid dice notation", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(back))
	s.Equal("20abcd5", errors.GetMeta(back)["notation"])
	s.True(errors.HasReason(back, errors.CodeInvalidArgument, "invalid_notation"))
}

func (s *ErrorsTestSuite) TestGRPCRoundTripValidationErrors() {
	err := errors.NewValidationBuilder().
		RequiredField("name").
		InvalidField("damage", "not a dice notation").
		Build()

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Len(st.Details(), 1)

	fields, ok := errors.GetMeta(errors.FromGRPCError(grpcErr))["validation_errors"].(map[string]interface{})
	s.Require().True(ok, "validation_errors should arrive as a struct")
	s.Equal([]interface{}{"is required"}, fields["name"])
	s.Equal([]interface{}{"is invalid: not a dice notation"}, fields["damage"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorStringifiesUnsupportedMeta() {
	err := errors.InvalidArgument("bad").WithMeta("when", struct{ Turn int }{Turn: 2})

	back := errors.FromGRPCError(errors.ToGRPCError(err))
	s.Equal("{2}", errors.GetMeta(back)["when"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlainError() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeOK, codes.OK},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeOutOfRange, codes.OutOfRange},
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInternal, codes.Internal},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
