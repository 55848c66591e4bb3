package main

import (
	"fmt"
	"log"
	"os"

	"github.com/solstice-dev/tyrouter"
)

func main() {
	home, err := tyrouter.Route0(
		tyrouter.Nil(),
		func() string { return "home" },
	)
	if err != nil {
		log.Fatal(err)
	}

	userByID, err := tyrouter.Route1(
		tyrouter.Lit("users", tyrouter.Var(tyrouter.Int, tyrouter.Nil())),
		func(id int) string { return fmt.Sprintf("user %d", id) },
	)
	if err != nil {
		log.Fatal(err)
	}

	post, err := tyrouter.Route2(
		tyrouter.Lit("users", tyrouter.Var(tyrouter.Int, tyrouter.Lit("posts", tyrouter.Var(tyrouter.String, tyrouter.Nil())))),
		func(id int, slug string) string { return fmt.Sprintf("user %d, post %q", id, slug) },
	)
	if err != nil {
		log.Fatal(err)
	}

	router, err := tyrouter.Create(home, userByID, post)
	if err != nil {
		log.Fatal(err)
	}

	for _, uri := range []string{"", "users/42", "users/42/posts/hello-world", "users/nope"} {
		if result, ok := router.Match(uri); ok {
			fmt.Printf("%-30s -> %v\n", uri, result)
		} else {
			fmt.Printf("%-30s -> no match\n", uri)
		}
	}

	dump, err := router.Dump().EncodeJSON()
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(dump)
	fmt.Println()
}
