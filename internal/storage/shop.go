package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"shadow_system/internal/models"
)

const (
	listOwnShopItemsQuery = `SELECT id, name, description, cost, created_by, is_active, created_at FROM shop_items WHERE is_active = TRUE AND created_by = $1 ORDER BY created_at DESC;`
	listAllShopItemsQuery = `SELECT id, name, description, cost, created_by, is_active, created_at FROM shop_items WHERE is_active = TRUE ORDER BY created_at DESC;`
	createShopItemQuery   = `INSERT INTO shop_items (name, description, cost, created_by) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`
	getShopItemQuery      = `SELECT id, name, description, cost, created_by, is_active, created_at FROM shop_items WHERE id = $1 AND is_active = TRUE;`
	updateShopItemQuery   = `UPDATE shop_items SET name = $1, description = $2, cost = $3 WHERE id = $4 RETURNING id, name, description, cost, created_by, is_active, created_at;`
	deactivateItemQuery   = `UPDATE shop_items SET is_active = FALSE WHERE id = $1 RETURNING id, name, description, cost, created_by, is_active, created_at;`
	debitUserQuery        = `UPDATE users SET coins = coins - $1, updated_at = NOW() WHERE id = $2 RETURNING coins;`
	addInventoryQuery     = `INSERT INTO inventory_items (user_id, name, description, cost) VALUES ($1, $2, $3, $4) RETURNING id, purchased_at;`

	listRewardsQuery  = `SELECT id, name, description, created_by, created_at FROM daily_rewards WHERE created_by = $1 ORDER BY created_at DESC;`
	createRewardQuery = `INSERT INTO daily_rewards (name, description, created_by) VALUES ($1, $2, $3) RETURNING id, created_at;`
	getRewardQuery    = `SELECT id, name, description, created_by, created_at FROM daily_rewards WHERE id = $1;`
	updateRewardQuery = `UPDATE daily_rewards SET name = $1, description = $2 WHERE id = $3 RETURNING id, name, description, created_by, created_at;`
	deleteRewardQuery = `DELETE FROM daily_rewards WHERE id = $1 RETURNING id, name, description, created_by, created_at;`
)

// ListShopItems returns active shop items: the user's own by default, or the whole
// shared catalog when showAll is set.
func (postgresql *PostgreSQL) ListShopItems(ctx context.Context, userID int64, showAll bool) ([]models.ShopItem, error) {
	var rows *sql.Rows
	var err error
	if showAll {
		rows, err = postgresql.db.QueryContext(ctx, listAllShopItemsQuery)
	} else {
		rows, err = postgresql.db.QueryContext(ctx, listOwnShopItemsQuery, userID)
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a shop items listing query: %s", err)
		return nil, err
	}
	defer rows.Close()

	items := make([]models.ShopItem, 0)
	for rows.Next() {
		item := models.ShopItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Cost, &item.CreatedBy, &item.IsActive, &item.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListShopItems method: %s", err)
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListShopItems method: %s", err)
		return items, err
	}

	return items, nil
}

// CreateShopItem inserts a new shop item owned by item.CreatedBy.
func (postgresql *PostgreSQL) CreateShopItem(ctx context.Context, item *models.ShopItem) (*models.ShopItem, error) {
	err := postgresql.db.QueryRowContext(ctx, createShopItemQuery, item.Name, item.Description, item.Cost, item.CreatedBy).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createShopItemQuery: %s", err)
		return item, err
	}
	item.IsActive = true
	return item, nil
}

// UpdateShopItem replaces the item's name, description, and cost. Owner only.
func (postgresql *PostgreSQL) UpdateShopItem(ctx context.Context, itemID, ownerID int64, req models.CreateShopItemRequest) (*models.ShopItem, error) {
	item := &models.ShopItem{}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		var createdBy int64
		err := tx.QueryRowContext(ctx, getShopItemQuery, itemID).
			Scan(&item.ID, &item.Name, &item.Description, &item.Cost, &createdBy, &item.IsActive, &item.CreatedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getShopItemQuery: %s", err)
			}
			return err
		}
		if createdBy != ownerID {
			return ErrNotOwner
		}

		return tx.QueryRowContext(ctx, updateShopItemQuery, req.Name, req.Description, req.Cost, itemID).
			Scan(&item.ID, &item.Name, &item.Description, &item.Cost, &item.CreatedBy, &item.IsActive, &item.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// DeactivateShopItem soft-deletes an item owned by the caller. Inventory rows keep
// their snapshot of the item, so nothing else is touched.
func (postgresql *PostgreSQL) DeactivateShopItem(ctx context.Context, itemID, ownerID int64) (*models.ShopItem, error) {
	item := &models.ShopItem{}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		var createdBy int64
		err := tx.QueryRowContext(ctx, getShopItemQuery, itemID).
			Scan(&item.ID, &item.Name, &item.Description, &item.Cost, &createdBy, &item.IsActive, &item.CreatedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getShopItemQuery: %s", err)
			}
			return err
		}
		if createdBy != ownerID {
			return ErrNotOwner
		}

		return tx.QueryRowContext(ctx, deactivateItemQuery, itemID).
			Scan(&item.ID, &item.Name, &item.Description, &item.Cost, &item.CreatedBy, &item.IsActive, &item.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// PurchaseItem buys a shop item for the user: the balance check, the debit, and the
// inventory append happen in one transaction. Insufficient balance fails with an error
// wrapping ErrNotEnoughCoins and the user's coins are left untouched.
func (postgresql *PostgreSQL) PurchaseItem(ctx context.Context, userID, itemID int64) (*models.PurchaseResult, error) {
	result := &models.PurchaseResult{}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		item := models.ShopItem{}
		err := tx.QueryRowContext(ctx, getShopItemQuery, itemID).
			Scan(&item.ID, &item.Name, &item.Description, &item.Cost, &item.CreatedBy, &item.IsActive, &item.CreatedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getShopItemQuery: %s", err)
			}
			return err
		}

		var coins, totalXp int
		if err := tx.QueryRowContext(ctx, getUserForUpdate, userID).Scan(&coins, &totalXp); err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getUserForUpdate: %s", err)
			}
			return err
		}
		if coins < item.Cost {
			return fmt.Errorf("%w: you need %d coins but only have %d", ErrNotEnoughCoins, item.Cost, coins)
		}

		if err := tx.QueryRowContext(ctx, debitUserQuery, item.Cost, userID).Scan(&result.RemainingCoins); err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query debitUserQuery: %s", err)
			return err
		}

		purchased := &models.InventoryItem{
			Name:        item.Name,
			Description: item.Description,
			Cost:        item.Cost,
		}
		if err := tx.QueryRowContext(ctx, addInventoryQuery, userID, item.Name, item.Description, item.Cost).
			Scan(&purchased.ID, &purchased.PurchasedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query addInventoryQuery: %s", err)
			return err
		}
		result.PurchasedItem = purchased

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ListDailyRewards returns the daily rewards created by the user, newest first.
func (postgresql *PostgreSQL) ListDailyRewards(ctx context.Context, ownerID int64) ([]models.DailyReward, error) {
	rows, err := postgresql.db.QueryContext(ctx, listRewardsQuery, ownerID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listRewardsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	rewards := make([]models.DailyReward, 0)
	for rows.Next() {
		reward := models.DailyReward{}
		if err := rows.Scan(&reward.ID, &reward.Name, &reward.Description, &reward.CreatedBy, &reward.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListDailyRewards method: %s", err)
			return nil, err
		}
		rewards = append(rewards, reward)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListDailyRewards method: %s", err)
		return rewards, err
	}

	return rewards, nil
}

// CreateDailyReward inserts a new daily reward owned by reward.CreatedBy.
func (postgresql *PostgreSQL) CreateDailyReward(ctx context.Context, reward *models.DailyReward) (*models.DailyReward, error) {
	err := postgresql.db.QueryRowContext(ctx, createRewardQuery, reward.Name, reward.Description, reward.CreatedBy).
		Scan(&reward.ID, &reward.CreatedAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createRewardQuery: %s", err)
		return reward, err
	}
	return reward, nil
}

// UpdateDailyReward replaces the reward's name and description. Owner only.
func (postgresql *PostgreSQL) UpdateDailyReward(ctx context.Context, rewardID, ownerID int64, name, description string) (*models.DailyReward, error) {
	reward := &models.DailyReward{}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		var createdBy int64
		err := tx.QueryRowContext(ctx, getRewardQuery, rewardID).
			Scan(&reward.ID, &reward.Name, &reward.Description, &createdBy, &reward.CreatedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getRewardQuery: %s", err)
			}
			return err
		}
		if createdBy != ownerID {
			return ErrNotOwner
		}

		return tx.QueryRowContext(ctx, updateRewardQuery, name, description, rewardID).
			Scan(&reward.ID, &reward.Name, &reward.Description, &reward.CreatedBy, &reward.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return reward, nil
}

// DeleteDailyReward removes a reward owned by the caller and returns the deleted row.
func (postgresql *PostgreSQL) DeleteDailyReward(ctx context.Context, rewardID, ownerID int64) (*models.DailyReward, error) {
	reward := &models.DailyReward{}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		var createdBy int64
		err := tx.QueryRowContext(ctx, getRewardQuery, rewardID).
			Scan(&reward.ID, &reward.Name, &reward.Description, &createdBy, &reward.CreatedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getRewardQuery: %s", err)
			}
			return err
		}
		if createdBy != ownerID {
			return ErrNotOwner
		}

		return tx.QueryRowContext(ctx, deleteRewardQuery, rewardID).
			Scan(&reward.ID, &reward.Name, &reward.Description, &reward.CreatedBy, &reward.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return reward, nil
}
