package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SetProductImage stores or replaces a product's photo.
func SetProductImage(ctx context.Context, db *sql.DB, productID string, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO product_images (product_id, image, mime) VALUES (?, ?, ?)
		 ON CONFLICT (product_id) DO UPDATE SET image = excluded.image, mime = excluded.mime,
		                                        updated_at = CURRENT_TIMESTAMP`,
		productID, image, mime,
	)
	if err != nil {
		return fmt.Errorf("setting product image: %w", err)
	}
	return nil
}

// GetProductImage returns a product's photo and MIME type, or nil data when
// no photo is stored.
func GetProductImage(ctx context.Context, db *sql.DB, productID string) ([]byte, string, error) {
	var image []byte
	var mime string
	err := db.QueryRowContext(ctx,
		`SELECT image, mime FROM product_images WHERE product_id = ?`, productID,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting product image: %w", err)
	}
	return image, mime, nil
}

// DeleteProductImage removes a product's photo, if any.
func DeleteProductImage(ctx context.Context, db *sql.DB, productID string) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM product_images WHERE product_id = ?`, productID,
	)
	if err != nil {
		return fmt.Errorf("deleting product image: %w", err)
	}
	return nil
}
