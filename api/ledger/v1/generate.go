// Package ledgerv1 帳本服務的 gRPC 合約，由 ledger.proto 產生
package ledgerv1

//go:generate protoc -I ../../.. --go_out=../../.. --go_opt=paths=source_relative --go-grpc_out=../../.. --go-grpc_opt=paths=source_relative api/ledger/v1/ledger.proto
