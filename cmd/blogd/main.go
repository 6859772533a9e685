// @title           Blogging Platform API
// @version         1.0
// @description     Users, blog posts and comments with token based access control.
// @BasePath        /
//
// @securityDefinitions.apikey  TokenAuth
// @in                          header
// @name                        Authorization
// @description                 Raw session token, without a Bearer prefix.
package main

import (
	"os"

	"github.com/blogsphere/blog-platform/cmd/blogd/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
