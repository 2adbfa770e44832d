// Command forkful is a terminal client for the Forkful API. It keeps a
// session token under the user's config directory, so logging in once is
// enough for subsequent commands.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/forkful/forkful-go/client"
)

const defaultAPIURL = "http://localhost:8080/api"

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: forkful <command> [arguments]

Commands:
  register   -username -email -password        create an account
  login      -username -password [-admin]      sign in and store the token
  logout                                       drop the stored token
  whoami                                       show the current session

  recipes    popular | all | search | mine | show | publish | edit | delete
  tags       list | add | delete
  comments   list | post | delete
  favorites  list | add | remove
  likes      count | like | unlike | mine
  inventory  list | add | edit | delete
  list       list | add | edit | delete
  profile    show | update

The API base URL comes from FORKFUL_API_URL (default %s).
`, defaultAPIURL)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	baseURL := os.Getenv("FORKFUL_API_URL")
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	session, err := client.DefaultFileSession()
	if err != nil {
		fatal(err)
	}
	c := client.New(baseURL, client.WithSession(session))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var cmdErr error
	switch os.Args[1] {
	case "register":
		cmdErr = cmdRegister(ctx, c)
	case "login":
		cmdErr = cmdLogin(ctx, c, session)
	case "logout":
		cmdErr = session.Logout()
	case "whoami":
		cmdErr = cmdWhoami(session)
	case "recipes":
		cmdErr = cmdRecipes(ctx, c)
	case "tags":
		cmdErr = cmdTags(ctx, c)
	case "comments":
		cmdErr = cmdComments(ctx, c, session)
	case "favorites":
		cmdErr = cmdFavorites(ctx, c)
	case "likes":
		cmdErr = cmdLikes(ctx, c, session)
	case "inventory":
		cmdErr = cmdItems(ctx, c.Inventory.Mine, c.Inventory.Add, c.Inventory.Update, c.Inventory.Delete)
	case "list":
		cmdErr = cmdItems(ctx, c.ShoppingList.Mine, c.ShoppingList.Add, c.ShoppingList.Update, c.ShoppingList.Delete)
	case "profile":
		cmdErr = cmdProfile(ctx, c)
	default:
		usage()
	}
	if cmdErr != nil {
		fatal(cmdErr)
	}
}

func fatal(err error) {
	var apiErr *client.Error
	if errors.As(err, &apiErr) {
		fmt.Fprintf(os.Stderr, "forkful: %s\n", apiErr.Msg)
	} else {
		fmt.Fprintf(os.Stderr, "forkful: %v\n", err)
	}
	os.Exit(1)
}

func subArgs() []string {
	if len(os.Args) > 2 {
		return os.Args[2:]
	}
	return nil
}

func cmdRegister(ctx context.Context, c *client.Client) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "account username")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(subArgs())

	if err := c.Auth.Register(ctx, *username, *email, *password); err != nil {
		return err
	}
	fmt.Println("account created, you can now log in")
	return nil
}

func cmdLogin(ctx context.Context, c *client.Client, session client.SessionStore) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	admin := fs.Bool("admin", false, "log in through the admin endpoint")
	fs.Parse(subArgs())

	role := ""
	if *admin {
		role = client.RoleAdmin
	}
	creds, err := c.Auth.Login(ctx, *username, *password, role)
	if err != nil {
		return err
	}
	if err := session.Login(creds.Token); err != nil {
		return err
	}
	fmt.Printf("logged in as user %d\n", creds.UserID)
	return nil
}

func cmdWhoami(session client.SessionStore) error {
	if !session.LoggedIn() {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("logged in as user %d\n", session.UserID())
	return nil
}

func cmdRecipes(ctx context.Context, c *client.Client) error {
	args := subArgs()
	if len(args) == 0 {
		usage()
	}

	switch args[0] {
	case "popular":
		page, err := c.Recipes.Popular(ctx)
		if err != nil {
			return err
		}
		printRecipePage(page, 0)
		return nil
	case "all":
		fs := flag.NewFlagSet("recipes all", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		pageSize := fs.Int("pageSize", 10, "records per page")
		fs.Parse(args[1:])
		result, err := c.Recipes.All(ctx, *page, *pageSize)
		if err != nil {
			return err
		}
		printRecipePage(result, *pageSize)
		return nil
	case "search":
		fs := flag.NewFlagSet("recipes search", flag.ExitOnError)
		keyword := fs.String("keyword", "", "title keyword")
		fs.Parse(args[1:])
		result, err := c.Recipes.Search(ctx, *keyword)
		if err != nil {
			return err
		}
		printRecipePage(result, 0)
		return nil
	case "mine":
		recipes, err := c.Recipes.Mine(ctx)
		if err != nil {
			return err
		}
		printRecipes(recipes)
		return nil
	case "show":
		fs := flag.NewFlagSet("recipes show", flag.ExitOnError)
		id := fs.Int64("id", 0, "recipe id")
		fs.Parse(args[1:])
		recipe, err := c.Recipes.Get(ctx, *id)
		if err != nil {
			return err
		}
		printRecipe(recipe)
		return nil
	case "publish":
		fs := flag.NewFlagSet("recipes publish", flag.ExitOnError)
		title := fs.String("title", "", "recipe title")
		ingredients := fs.String("ingredients", "", "comma-separated ingredients")
		directions := fs.String("directions", "", "comma-separated steps")
		minutes := fs.Int("minutes", 0, "cooking time in minutes")
		link := fs.String("link", "", "source link")
		tags := fs.String("tags", "", "comma-separated tag ids")
		fs.Parse(args[1:])
		tagIDs, err := splitIDs(*tags)
		if err != nil {
			return err
		}
		recipe, err := c.Recipes.Publish(ctx, client.RecipeDraft{
			Title:       *title,
			Ingredients: splitList(*ingredients),
			Directions:  splitList(*directions),
			Minutes:     *minutes,
			Link:        *link,
			TagIDs:      tagIDs,
		})
		if err != nil {
			return err
		}
		fmt.Printf("published recipe %d\n", recipe.ID)
		return nil
	case "edit":
		fs := flag.NewFlagSet("recipes edit", flag.ExitOnError)
		id := fs.Int64("id", 0, "recipe id")
		title := fs.String("title", "", "new title (empty keeps current)")
		minutes := fs.Int("minutes", -1, "new cooking time (-1 keeps current)")
		tags := fs.String("tags", "", "comma-separated tag ids replacing the current set (unset keeps current)")
		fs.Parse(args[1:])
		recipe, err := c.Recipes.Get(ctx, *id)
		if err != nil {
			return err
		}
		if *title != "" {
			recipe.Title = *title
		}
		if *minutes >= 0 {
			recipe.Minutes = *minutes
		}
		if *tags != "" {
			if recipe.TagIDs, err = splitIDs(*tags); err != nil {
				return err
			}
		}
		updated, err := c.Recipes.Edit(ctx, recipe)
		if err != nil {
			return err
		}
		fmt.Printf("updated recipe %d\n", updated.ID)
		return nil
	case "delete":
		fs := flag.NewFlagSet("recipes delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "recipe id")
		fs.Parse(args[1:])
		if err := c.Recipes.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("deleted recipe %d\n", *id)
		return nil
	default:
		usage()
		return nil
	}
}

func cmdTags(ctx context.Context, c *client.Client) error {
	args := subArgs()
	if len(args) == 0 {
		usage()
	}

	switch args[0] {
	case "list":
		tags, err := c.Tags.All(ctx)
		if err != nil {
			return err
		}
		for _, t := range tags {
			fmt.Printf("%d\t%s\n", t.ID, t.Name)
		}
		return nil
	case "add":
		fs := flag.NewFlagSet("tags add", flag.ExitOnError)
		name := fs.String("name", "", "tag name")
		fs.Parse(args[1:])
		tag, err := c.Tags.Add(ctx, *name)
		if err != nil {
			return err
		}
		fmt.Printf("created tag %d %s\n", tag.ID, tag.Name)
		return nil
	case "delete":
		fs := flag.NewFlagSet("tags delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "tag id")
		fs.Parse(args[1:])
		if err := c.Tags.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("deleted tag %d\n", *id)
		return nil
	default:
		usage()
		return nil
	}
}

func cmdComments(ctx context.Context, c *client.Client, session client.SessionStore) error {
	args := subArgs()
	if len(args) == 0 {
		usage()
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("comments list", flag.ExitOnError)
		recipeID := fs.Int64("recipe", 0, "recipe id")
		fs.Parse(args[1:])
		comments, err := c.Comments.ForRecipe(ctx, *recipeID)
		if err != nil {
			return err
		}
		for _, cm := range comments {
			fmt.Printf("%d\tuser %d\t%d/5\t%s\n", cm.ID, cm.UserID, cm.Rating, cm.Content)
		}
		return nil
	case "post":
		fs := flag.NewFlagSet("comments post", flag.ExitOnError)
		recipeID := fs.Int64("recipe", 0, "recipe id")
		content := fs.String("content", "", "comment text")
		rating := fs.Int("rating", 0, "rating 0-5")
		fs.Parse(args[1:])
		posted, err := c.Comments.Post(ctx, client.Comment{
			RecipeID: *recipeID,
			Content:  *content,
			Rating:   *rating,
		})
		if err != nil {
			return err
		}
		fmt.Printf("posted comment %d\n", posted.ID)
		return nil
	case "delete":
		fs := flag.NewFlagSet("comments delete", flag.ExitOnError)
		recipeID := fs.Int64("recipe", 0, "recipe id the comment is on")
		id := fs.Int64("id", 0, "comment id")
		fs.Parse(args[1:])
		comments, err := c.Comments.ForRecipe(ctx, *recipeID)
		if err != nil {
			return err
		}
		// Check ownership before firing the request; the server enforces it
		// again regardless.
		var found *client.Comment
		for i := range comments {
			if comments[i].ID == *id {
				found = &comments[i]
				break
			}
		}
		if found == nil {
			return fmt.Errorf("comment %d not found on recipe %d", *id, *recipeID)
		}
		if !client.CanDelete(*found, session.UserID()) {
			return fmt.Errorf("comment %d belongs to another user", *id)
		}
		if err := c.Comments.Delete(ctx, *id, session.UserID()); err != nil {
			return err
		}
		fmt.Printf("deleted comment %d\n", *id)
		return nil
	default:
		usage()
		return nil
	}
}

func cmdFavorites(ctx context.Context, c *client.Client) error {
	args := subArgs()
	if len(args) == 0 {
		usage()
	}

	switch args[0] {
	case "list":
		recipes, err := c.Favorites.Mine(ctx)
		if err != nil {
			return err
		}
		printRecipes(recipes)
		return nil
	case "add":
		fs := flag.NewFlagSet("favorites add", flag.ExitOnError)
		recipeID := fs.Int64("recipe", 0, "recipe id")
		fs.Parse(args[1:])
		if err := c.Favorites.Add(ctx, *recipeID); err != nil {
			return err
		}
		fmt.Printf("favorited recipe %d\n", *recipeID)
		return nil
	case "remove":
		fs := flag.NewFlagSet("favorites remove", flag.ExitOnError)
		recipeID := fs.Int64("recipe", 0, "recipe id")
		fs.Parse(args[1:])
		if err := c.Favorites.Remove(ctx, *recipeID); err != nil {
			return err
		}
		fmt.Printf("unfavorited recipe %d\n", *recipeID)
		return nil
	default:
		usage()
		return nil
	}
}

func cmdLikes(ctx context.Context, c *client.Client, session client.SessionStore) error {
	args := subArgs()
	if len(args) == 0 {
		usage()
	}

	switch args[0] {
	case "count":
		fs := flag.NewFlagSet("likes count", flag.ExitOnError)
		recipeID := fs.Int64("recipe", 0, "recipe id")
		fs.Parse(args[1:])
		count, err := c.Likes.Count(ctx, *recipeID)
		if err != nil {
			return err
		}
		fmt.Println(count)
		return nil
	case "like", "unlike":
		fs := flag.NewFlagSet("likes "+args[0], flag.ExitOnError)
		recipeID := fs.Int64("recipe", 0, "recipe id")
		fs.Parse(args[1:])
		pair := client.Like{UserID: session.UserID(), RecipeID: *recipeID}
		var err error
		if args[0] == "like" {
			err = c.Likes.Like(ctx, pair)
		} else {
			err = c.Likes.Unlike(ctx, pair)
		}
		if err != nil {
			return err
		}
		// The count is authoritative on the server, so re-fetch it rather
		// than guessing at the new value.
		count, err := c.Likes.Count(ctx, *recipeID)
		if err != nil {
			return err
		}
		fmt.Printf("recipe %d now has %d likes\n", *recipeID, count)
		return nil
	case "mine":
		recipes, err := c.Likes.Mine(ctx)
		if err != nil {
			return err
		}
		printRecipes(recipes)
		return nil
	default:
		usage()
		return nil
	}
}

// cmdItems drives either the inventory or the shopping list; the two resources
// share the Item shape, so the command only differs in which service methods
// it is handed.
func cmdItems(
	ctx context.Context,
	mine func(context.Context) ([]client.Item, error),
	add func(context.Context, client.Item) (client.Item, error),
	update func(context.Context, client.Item) (client.Item, error),
	remove func(context.Context, int64) error,
) error {
	args := subArgs()
	if len(args) == 0 {
		usage()
	}

	switch args[0] {
	case "list":
		items, err := mine(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, it := range items {
			fmt.Fprintf(w, "%d\t%s\t%s %s\n", it.ID, it.ItemName, it.Quantity, it.Unit)
		}
		return w.Flush()
	case "add":
		fs := flag.NewFlagSet("items add", flag.ExitOnError)
		name := fs.String("name", "", "item name")
		quantity := fs.String("quantity", "1", "numeric quantity")
		unit := fs.String("unit", "", "unit of measure")
		fs.Parse(args[1:])
		item, err := add(ctx, client.Item{ItemName: *name, Quantity: *quantity, Unit: *unit})
		if err != nil {
			return err
		}
		fmt.Printf("added item %d\n", item.ID)
		return nil
	case "edit":
		fs := flag.NewFlagSet("items edit", flag.ExitOnError)
		id := fs.Int64("id", 0, "item id")
		name := fs.String("name", "", "item name")
		quantity := fs.String("quantity", "1", "numeric quantity")
		unit := fs.String("unit", "", "unit of measure")
		fs.Parse(args[1:])
		item, err := update(ctx, client.Item{ID: *id, ItemName: *name, Quantity: *quantity, Unit: *unit})
		if err != nil {
			return err
		}
		fmt.Printf("updated item %d\n", item.ID)
		return nil
	case "delete":
		fs := flag.NewFlagSet("items delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "item id")
		fs.Parse(args[1:])
		if err := remove(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("deleted item %d\n", *id)
		return nil
	default:
		usage()
		return nil
	}
}

func cmdProfile(ctx context.Context, c *client.Client) error {
	args := subArgs()
	if len(args) == 0 {
		usage()
	}

	switch args[0] {
	case "show":
		profile, err := c.Users.Profile(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("id:       %d\n", profile.ID)
		fmt.Printf("username: %s\n", profile.Username)
		fmt.Printf("email:    %s\n", profile.Email)
		if profile.Avatar != "" {
			fmt.Printf("avatar:   %s\n", profile.Avatar)
		}
		return nil
	case "update":
		fs := flag.NewFlagSet("profile update", flag.ExitOnError)
		email := fs.String("email", "", "new email (empty keeps current)")
		avatar := fs.String("avatar", "", "new avatar URL (empty keeps current)")
		password := fs.String("password", "", "new password (empty keeps current)")
		fs.Parse(args[1:])

		profile, err := c.Users.Profile(ctx)
		if err != nil {
			return err
		}
		if *email != "" {
			profile.Email = *email
		}
		if *avatar != "" {
			profile.Avatar = *avatar
		}
		profile.Password = *password
		updated, err := c.Users.UpdateProfile(ctx, profile)
		if err != nil {
			return err
		}
		fmt.Printf("updated profile for %s\n", updated.Username)
		return nil
	default:
		usage()
		return nil
	}
}

func printRecipePage(page client.Page[client.Recipe], pageSize int) {
	printRecipes(page.Records)
	if pageSize > 0 {
		fmt.Printf("%d recipes, %d pages\n", page.Total, page.Pages(pageSize))
	} else {
		fmt.Printf("%d recipes\n", page.Total)
	}
}

func printRecipes(recipes []client.Recipe) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range recipes {
		fmt.Fprintf(w, "%d\t%s\t%d min\n", r.ID, r.Title, r.Minutes)
	}
	w.Flush()
}

func printRecipe(r client.Recipe) {
	fmt.Printf("%s (#%d, %d min)\n", r.Title, r.ID, r.Minutes)
	if r.Link != "" {
		fmt.Printf("source: %s\n", r.Link)
	}
	fmt.Println("\nIngredients:")
	for _, ing := range r.Ingredients {
		fmt.Printf("  - %s\n", ing)
	}
	fmt.Println("\nDirections:")
	for i, step := range r.Directions {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
	if n := r.Nutrition; n != nil {
		fmt.Printf("\n%.0f kcal, %.0f%% protein DV\n", n.Calories(), n.Protein())
	}
	if len(r.Tags) > 0 {
		names := make([]string, len(r.Tags))
		for i, t := range r.Tags {
			names[i] = t.Name
		}
		fmt.Printf("tags: %s\n", strings.Join(names, ", "))
	}
	if len(r.Comments) > 0 {
		fmt.Println("\nComments:")
		for _, cm := range r.Comments {
			fmt.Printf("  user %d (%d/5): %s\n", cm.UserID, cm.Rating, cm.Content)
		}
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func splitIDs(s string) ([]int64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
