package server

import (
	"context"
	"math"
	"net"
	"time"

	"github.com/golang/glog"
	"github.com/sbezverk/msort/sort"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	MaxRcvMsgSize = 1024 * 1024

	ServiceName = "msort.Sorter"
	SortMethod  = "/" + ServiceName + "/Sort"

	valuesField     = "values"
	descendingField = "descending"
	sortedField     = "sorted"
)

// SorterServer is the server API of the msort.Sorter service.
// Request and response are structpb.Struct messages:
//
//	request  {values: [numbers], descending: bool}
//	response {values: [numbers], sorted: bool}
type SorterServer interface {
	Sort(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SorterServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Sort",
			Handler:    sortHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "msort.proto",
}

func sortHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := &structpb.Struct{}
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SorterServer).Sort(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SortMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SorterServer).Sort(ctx, req.(*structpb.Struct))
	}

	return interceptor(ctx, in, info, handler)
}

// Server is a running msort.Sorter gRPC service
type Server interface {
	Addr() net.Addr
	Stop()
}

var _ Server = &grpcSrv{}
var _ SorterServer = &grpcSrv{}

type grpcSrv struct {
	conn net.Listener
	gSrv *grpc.Server
}

func (srv *grpcSrv) Addr() net.Addr {
	return srv.conn.Addr()
}

func (srv *grpcSrv) Stop() {
	srv.gSrv.Stop()
	srv.conn.Close()
}

// New starts the service listening on addr
func New(addr string) (Server, error) {
	conn, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	return NewWithListener(conn), nil
}

// NewWithListener starts the service on an already open listener
func NewWithListener(conn net.Listener) Server {
	srv := &grpcSrv{
		conn: conn,
		gSrv: grpc.NewServer(
			grpc.MaxRecvMsgSize(MaxRcvMsgSize),
			grpc.KeepaliveParams(keepalive.ServerParameters{Time: time.Second * 30, Timeout: time.Second * 10}),
			grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{MinTime: time.Second * 10, PermitWithoutStream: true}),
		),
	}
	srv.gSrv.RegisterService(&serviceDesc, srv)

	go func() {
		if err := srv.gSrv.Serve(conn); err != nil {
			glog.Errorf("sorter service on %s failed with error: %+v", conn.Addr(), err)
		}
	}()
	glog.Infof("sorter service listening on %s", conn.Addr())

	return srv
}

func (srv *grpcSrv) Sort(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if p, ok := peer.FromContext(ctx); ok {
		glog.V(5).Infof("Incoming Sort from: %s", p.Addr)
	}
	values, err := decodeValues(req.GetFields()[valuesField])
	if err != nil {
		return nil, err
	}
	less := sort.Less[int64]
	if req.GetFields()[descendingField].GetBoolValue() {
		less = sort.Greater[int64]
	}
	sort.Sort(values, less)
	sorted := sort.IsSorted(values, less)
	glog.V(5).Infof("sorted %d values, verified: %t", len(values), sorted)

	return encodeReply(values, sorted), nil
}

func decodeValues(v *structpb.Value) ([]int64, error) {
	if v == nil {
		return nil, nil
	}
	if _, ok := v.GetKind().(*structpb.Value_NullValue); ok {
		return nil, nil
	}
	list, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be a list of integers", valuesField)
	}
	items := list.ListValue.GetValues()
	values := make([]int64, len(items))
	for i, item := range items {
		n, ok := item.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "%s[%d] is not a number", valuesField, i)
		}
		f := n.NumberValue
		if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
			return nil, status.Errorf(codes.InvalidArgument, "%s[%d] = %v is not an integer", valuesField, i, f)
		}
		values[i] = int64(f)
	}

	return values, nil
}

func encodeValues(values []int64) *structpb.Value {
	items := make([]*structpb.Value, len(values))
	for i, v := range values {
		items[i] = structpb.NewNumberValue(float64(v))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: items})
}

func encodeReply(values []int64, sorted bool) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			valuesField: encodeValues(values),
			sortedField: structpb.NewBoolValue(sorted),
		},
	}
}
