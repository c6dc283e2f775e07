// Package docs provides generated OpenAPI documentation.
//
// Bukken API
//
//	@title			Bukken API
//	@version		1.0
//	@description	Japanese real-estate PDF field extraction API.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/bukkenlabs/bukken
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/bukken/serve.go -o ./swagger --parseDependency --parseInternal
