package main

import "github.com/zoocast/catalog-api/cmd"

// @title           Zoo Catalog API
// @version         1.0.0
// @description     RSS catalog backend for the Zoo Telegram Mini App
// @contact.name    API Support
// @contact.url     https://github.com/zoocast/catalog-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
