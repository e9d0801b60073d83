// Address Datagen API
//
//	@title			Address Datagen API
//	@version		1.0
//	@description	Preview labelled synthetic addresses and inspect the character vocabulary.
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http
package docs

//go:generate swag init -g ../cmd/api/main.go -o . --parseInternal
