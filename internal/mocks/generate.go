package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.3 --name Repository --dir ../domain/football --output domain/football --outpkg football --filename Repository.go
