// Package errors provides structured errors for the wargame-api project.
//
// Every error carries a Code, a user-facing message, an optional cause and
// optional metadata. Codes survive wrapping, so a dice notation failure raised
// deep in the dice engine still reports INVALID_ARGUMENT at the gRPC edge.
//
// # Basic Usage
//
//	err := errors.InvalidArgumentf("invalid dice notation: %q", notation)
//	err := errors.OutOfRange("dice must have at least one side").
//	    WithMeta("notation", notation)
//
// Wrapping keeps the code of the innermost structured error:
//
//	if err := repo.Append(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to record roll")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // start a new session
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", profile.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err); clients recover the structured
// error with errors.FromGRPCError. Metadata travels as a structpb.Struct
// status detail.
//
// Codes used by the dice engine, each tagged with a reason so callers can
// tell them from unrelated errors sharing the code (see HasReason):
//   - InvalidArgument, "invalid_notation": text does not match the grammar
//   - OutOfRange, "invalid_range": count or sides cannot be represented, or a
//     die has no sides
package errors
