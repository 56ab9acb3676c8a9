package main

import "github.com/dreamecho/feed-api/cmd"

// @title           Feed API
// @version         1.0.0
// @description     A podcast feed parsing and listening history API with sleep scoring
// @contact.name    API Support
// @contact.url     https://github.com/dreamecho/feed-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
