package storage

import (
	"context"
	"database/sql"
	"errors"
	"shadow_system/internal/models"
	"shadow_system/internal/pkg/security"
)

const (
	createUserQuery    = `INSERT INTO users (username, password_hash, coins, total_xp) VALUES ($1, $2, $3, $4) RETURNING id;`
	checkUserQuery     = `SELECT id, password_hash FROM users WHERE username = $1;`
	getUserQuery       = `SELECT id, username, coins, total_xp FROM users WHERE id = $1;`
	getUserForUpdate   = `SELECT coins, total_xp FROM users WHERE id = $1 FOR UPDATE;`
	creditUserQuery    = `UPDATE users SET total_xp = total_xp + $1, coins = coins + $2, updated_at = NOW() WHERE id = $3 RETURNING total_xp, coins;`
	setProfileQuery    = `UPDATE users SET total_xp = COALESCE($1, total_xp), coins = COALESCE($2, coins), updated_at = NOW() WHERE id = $3 RETURNING id, username, coins, total_xp;`
	listTitlesQuery    = `SELECT name, source, awarded_at FROM titles WHERE user_id = $1 ORDER BY awarded_at;`
	deleteTitleQuery   = `DELETE FROM titles WHERE user_id = $1 AND name = $2;`
	awardTitleQuery    = `INSERT INTO titles (user_id, name, source) VALUES ($1, $2, $3) ON CONFLICT (user_id, name) DO NOTHING;`
	listInventoryQuery = `SELECT id, name, description, cost, purchased_at, used, used_at FROM inventory_items WHERE user_id = $1 ORDER BY purchased_at DESC;`
	getInvItemQuery    = `SELECT id, name, description, cost, purchased_at, used, used_at FROM inventory_items WHERE id = $1 AND user_id = $2;`
	useInvItemQuery    = `UPDATE inventory_items SET used = TRUE, used_at = NOW() WHERE id = $1 AND user_id = $2 AND used = FALSE RETURNING id, name, description, cost, purchased_at, used, used_at;`
	deleteInvItemQuery = `DELETE FROM inventory_items WHERE id = $1 AND user_id = $2 RETURNING id, name, description, cost, purchased_at, used, used_at;`
)

// CheckUser verifies the user's credentials by retrieving the user's ID and encrypted password,
// then checking the provided password against the stored hash. A user with ID 0 is returned
// when no account with the given username exists.
func (postgresql *PostgreSQL) CheckUser(ctx context.Context, user *models.User) (*models.User, error) {
	var encryptedPassword string

	err := postgresql.db.QueryRowContext(ctx, checkUserQuery, user.Username).Scan(&user.ID, &encryptedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return user, nil
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query checkUserQuery: %s", err)
		return user, err
	}

	err = security.CheckPassword(encryptedPassword, user.Password)
	if err != nil {
		postgresql.log.Sugar().Errorf(err.Error())
		return user, err
	}

	return user, nil
}

// CreateUser registers a new user by hashing the password and inserting the user into the database.
func (postgresql *PostgreSQL) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	encryptedPassword := security.HashPassword(user.Password)

	err := postgresql.db.QueryRowContext(ctx, createUserQuery, user.Username, encryptedPassword, user.Coins, user.TotalXp).Scan(&user.ID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createUserQuery: %s", err)
		return user, err
	}
	return user, nil
}

// GetUser retrieves the account state for a given user ID.
func (postgresql *PostgreSQL) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user := &models.User{}

	err := postgresql.db.QueryRowContext(ctx, getUserQuery, userID).Scan(&user.ID, &user.Username, &user.Coins, &user.TotalXp)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query getUserQuery: %s", err)
		}
		return nil, err
	}

	return user, nil
}

// UpdateProfile overrides totalXp and coins with the provided values; nil fields are left untouched.
func (postgresql *PostgreSQL) UpdateProfile(ctx context.Context, userID int64, totalXp, coins *int) (*models.User, error) {
	user := &models.User{}

	err := postgresql.db.QueryRowContext(ctx, setProfileQuery, totalXp, coins, userID).
		Scan(&user.ID, &user.Username, &user.Coins, &user.TotalXp)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query setProfileQuery: %s", err)
		}
		return nil, err
	}

	return user, nil
}

// ListTitles returns the titles a user has earned, oldest first.
func (postgresql *PostgreSQL) ListTitles(ctx context.Context, userID int64) ([]models.Title, error) {
	rows, err := postgresql.db.QueryContext(ctx, listTitlesQuery, userID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listTitlesQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	titles := make([]models.Title, 0)
	for rows.Next() {
		title := models.Title{}
		if err := rows.Scan(&title.Name, &title.Source, &title.AwardedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListTitles method: %s", err)
			return nil, err
		}
		titles = append(titles, title)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListTitles method: %s", err)
		return titles, err
	}

	return titles, nil
}

// DeleteTitle removes a title from the user's titles by name.
// It returns sql.ErrNoRows when the user holds no title with that name.
func (postgresql *PostgreSQL) DeleteTitle(ctx context.Context, userID int64, name string) error {
	result, err := postgresql.db.ExecContext(ctx, deleteTitleQuery, userID, name)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query deleteTitleQuery: %s", err)
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ListInventory returns the user's purchased items, newest first.
func (postgresql *PostgreSQL) ListInventory(ctx context.Context, userID int64) ([]models.InventoryItem, error) {
	rows, err := postgresql.db.QueryContext(ctx, listInventoryQuery, userID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listInventoryQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	inventory := make([]models.InventoryItem, 0)
	for rows.Next() {
		item := models.InventoryItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Cost, &item.PurchasedAt, &item.Used, &item.UsedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListInventory method: %s", err)
			return nil, err
		}
		inventory = append(inventory, item)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListInventory method: %s", err)
		return inventory, err
	}

	return inventory, nil
}

// UseInventoryItem marks an inventory item as used. It returns ErrItemUsed when the
// item was consumed earlier and sql.ErrNoRows when the item is not in the user's inventory.
func (postgresql *PostgreSQL) UseInventoryItem(ctx context.Context, userID, itemID int64) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}

	err := postgresql.db.QueryRowContext(ctx, useInvItemQuery, itemID, userID).
		Scan(&item.ID, &item.Name, &item.Description, &item.Cost, &item.PurchasedAt, &item.Used, &item.UsedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Distinguish a missing item from an already used one.
		var used bool
		checkErr := postgresql.db.QueryRowContext(ctx, getInvItemQuery, itemID, userID).
			Scan(&item.ID, &item.Name, &item.Description, &item.Cost, &item.PurchasedAt, &used, &item.UsedAt)
		if checkErr != nil {
			return nil, sql.ErrNoRows
		}
		return nil, ErrItemUsed
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query useInvItemQuery: %s", err)
		return nil, err
	}

	return item, nil
}

// DeleteInventoryItem removes an item from the user's inventory and returns the removed row.
func (postgresql *PostgreSQL) DeleteInventoryItem(ctx context.Context, userID, itemID int64) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}

	err := postgresql.db.QueryRowContext(ctx, deleteInvItemQuery, itemID, userID).
		Scan(&item.ID, &item.Name, &item.Description, &item.Cost, &item.PurchasedAt, &item.Used, &item.UsedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query deleteInvItemQuery: %s", err)
		}
		return nil, err
	}

	return item, nil
}
