// Package ensuregrpc maps ensure's presence checks onto gRPC.
package ensuregrpc

import (
	"github.com/banglin/go-ensure/ensure"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// FromStringValue lifts a wrapper field into an ensure.String. Protobuf has
// no explicit null for message fields, so a nil wrapper is Absent.
func FromStringValue(v *wrapperspb.StringValue) ensure.String {
	if v == nil {
		return ensure.String{}
	}
	return ensure.Of(v.GetValue())
}

// Status converts presence failures in err into an InvalidArgument status
// carrying a BadRequest detail with one violation per failure. Errors that
// hold no presence failure are returned unchanged.
func Status(err error) error {
	failures := ensure.Errors(err)
	if len(failures) == 0 {
		return err
	}

	st := status.New(codes.InvalidArgument, failures[0].Error())
	br := &errdetails.BadRequest{}
	for _, f := range failures {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       f.Field,
			Description: f.Reason(),
		})
	}

	withDetails, detailErr := st.WithDetails(br)
	if detailErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}
