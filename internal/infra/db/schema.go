package db

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/pkg/errs"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS menus (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price INTEGER NOT NULL CHECK (price >= 0),
		image_url VARCHAR(500),
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		reservation_date DATE NOT NULL,
		reservation_time TIME NOT NULL,
		number_of_people INTEGER NOT NULL CHECK (number_of_people > 0),
		special_requests TEXT,
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		payment_intent_id VARCHAR(255),
		amount INTEGER,
		payment_status VARCHAR(50) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS reservation_menu_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		reservation_id UUID NOT NULL REFERENCES reservations(id) ON DELETE CASCADE,
		menu_id UUID NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(reservation_id, menu_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_user_id ON reservations(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_payment_intent_id ON reservations(payment_intent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reservation_menu_items_reservation_id ON reservation_menu_items(reservation_id)`,
}

// seedMenus matches the launch menu. Inserted only when the table is empty.
var seedMenus = []struct {
	Name        string
	Description string
	Price       int64
	ImageURL    string
}{
	{"本格ラーメン", "長時間煮込んだ濃厚スープと、こだわりの麺が自慢の一杯。チャーシュー、味玉、ネギがたっぷりと盛り付けられています。", 850, "images/ramen.png"},
	{"特製丼", "ボリューム満点の特製丼。ご飯の上にたっぷりの具材をのせた、満足感のある一品です。", 750, "images/don.png"},
	{"特製唐揚げ", "ジューシーでサクサクの特製唐揚げ。秘伝のタレで味付けした、絶品サイドメニューです。", 550, "images/karaage.png"},
	{"ドリンク", "コーラ、オレンジジュース、お茶など、各種ドリンクをご用意しています。", 200, "images/cola.png"},
}

// InitSchema creates the tables if they do not exist and seeds the initial
// menu once. Statements are idempotent, so repeated startups are safe.
func InitSchema(ctx context.Context, pool DBTX) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return errs.Wrap(err, "failed to apply schema statement")
		}
	}

	var menuCount int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM menus`).Scan(&menuCount); err != nil {
		return errs.Wrap(err, "failed to count menus")
	}
	if menuCount > 0 {
		return nil
	}

	for _, m := range seedMenus {
		_, err := pool.Exec(ctx,
			`INSERT INTO menus (name, description, price, image_url) VALUES ($1, $2, $3, $4)`,
			m.Name, m.Description, m.Price, m.ImageURL,
		)
		if err != nil {
			return errs.Wrap(err, "failed to seed menu")
		}
	}

	return nil
}
