package main

import "github.com/castpage/catalog-api/cmd"

// @title           Catalog API
// @version         1.0.0
// @description     Backend for the podcast marketing site: public episode catalog and admin panel
// @contact.name    API Support
// @contact.url     https://github.com/castpage/catalog-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Session token issued by the login endpoint, sent as "Bearer <token>"
func main() {
	cmd.Execute()
}
