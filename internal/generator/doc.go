// Package generator provides the file-operation layer used by the store
// generator: template rendering, validated operations, dry-run reporting and
// an all-or-nothing commit.
//
// # Operations
//
// Generators return a list of operations instead of touching the disk:
//
//	ops := []generator.Operation{
//	    &generator.ReplaceFileOp{Path: "src/stores/index.ts", Content: barrel, Mode: 0644},
//	    &generator.WriteFileOp{Path: "src/stores/cart.ts", Content: store, Mode: 0644},
//	}
//	err := generator.Execute(ctx, ops, generator.ExecuteOptions{})
//
// Execute validates every operation before writing anything, then stages all
// of them into a single Transaction.
//
// # Transactions
//
//	tx := generator.NewTransaction()
//	tx.AddFile("index.ts", barrel, 0644)
//	tx.AddFile("cart.ts", store, 0644)
//
//	if err := tx.Commit(); err != nil {
//	    // index.ts is back to its previous content, cart.ts is gone
//	    return err
//	}
//
// Files that existed before the commit are restored to their previous
// content on failure; files created by the commit are removed. Directories
// are never removed.
package generator
