// Package mocks provides shared mock implementations of the service
// interfaces for tests in other packages.
//
// Mocks use function fields: set a field to override one method, or leave
// it nil to get the default result configured on the struct.
//
//	jwt := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}
//	progress := &mocks.MockProgressService{RecordStatus: service.StatusError}
package mocks
