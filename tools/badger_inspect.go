package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"recipe-live/domain/interaction"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	// Scan records only, "idx:" keys hold no value worth printing
	prefix := flag.String("prefix", "rating:", "Prefix to scan: rating:, favorite: or comment:")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Recipe", "User", "Value", "Deleted", "Updated"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			if strings.HasPrefix(key, "idx:") {
				continue
			}
			err := item.Value(func(v []byte) error {
				row, err := toRow(key, v)
				if err != nil {
					fmt.Printf("Error decoding key %s: %v\n", key, err)
					return nil
				}
				table.Append(row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func toRow(key string, value []byte) ([]string, error) {
	switch {
	case strings.HasPrefix(key, "rating:"):
		var r interaction.Rating
		if err := json.Unmarshal(value, &r); err != nil {
			return nil, err
		}
		score := strconv.Itoa(r.Rating)
		if r.IsLiked {
			score += " liked"
		}
		return []string{key, r.RecipeID, r.UserID, score, strconv.FormatBool(r.IsDeleted),
			r.LastUpdated.Format("2006-01-02 15:04:05")}, nil
	case strings.HasPrefix(key, "favorite:"):
		var f interaction.Favorite
		if err := json.Unmarshal(value, &f); err != nil {
			return nil, err
		}
		return []string{key, f.RecipeID, f.UserID, "", "false", f.CreatedAt.Format("2006-01-02 15:04:05")}, nil
	case strings.HasPrefix(key, "comment:"):
		var c interaction.Comment
		if err := json.Unmarshal(value, &c); err != nil {
			return nil, err
		}
		text := c.Text
		if len([]rune(text)) > 40 {
			text = string([]rune(text)[:40]) + "..."
		}
		return []string{key, c.RecipeID, c.UserID, text, "false", c.LastUpdated.Format("2006-01-02 15:04:05")}, nil
	default:
		return []string{key, "", "", string(value), "", ""}, nil
	}
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
