// Package proto holds the gRPC bindings generated from api/proto/garden.
package proto

//go:generate protoc -I ../../../../api/proto --go_out=../../../.. --go_opt=module=github.com/dtroode/garden-server --go-grpc_out=../../../.. --go-grpc_opt=module=github.com/dtroode/garden-server garden/common.proto garden/auth.proto garden/users.proto
