// Package proto holds the protobuf definitions of the bms-booker tool service.
//
// The definitions under bmsbooker/ are compiled to Go with buf. To regenerate the code, run:
//
//	go generate ./...
//
// protoc-gen-go runs from the go.mod tool block; buf and protoc-gen-go-grpc are pinned in
// the directives below and in buf.gen.yaml.
package proto

//go:generate go run github.com/bufbuild/buf/cmd/buf@v1.50.0 generate
//go:generate go run mvdan.cc/gofumpt@v0.9.2 -w .
