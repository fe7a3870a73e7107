// Package proto holds the service definitions. Generated Go stubs land in
// gen/proto and are not committed.
package proto

//go:generate protoc --proto_path=. --go_out=../../gen/proto --go_opt=paths=source_relative --go-grpc_out=../../gen/proto --go-grpc_opt=paths=source_relative health/v1/health.proto
