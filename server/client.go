package server

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Sort asks the msort.Sorter service behind conn to sort values, it returns the sorted
// values and the service's verification of the result.
func Sort(ctx context.Context, conn grpc.ClientConnInterface, values []int64, descending bool) ([]int64, bool, error) {
	req := &structpb.Struct{
		Fields: map[string]*structpb.Value{
			valuesField:     encodeValues(values),
			descendingField: structpb.NewBoolValue(descending),
		},
	}
	repl := &structpb.Struct{}
	if err := conn.Invoke(ctx, SortMethod, req, repl); err != nil {
		return nil, false, err
	}
	sorted, err := decodeValues(repl.GetFields()[valuesField])
	if err != nil {
		return nil, false, fmt.Errorf("malformed reply: %w", err)
	}

	return sorted, repl.GetFields()[sortedField].GetBoolValue(), nil
}
