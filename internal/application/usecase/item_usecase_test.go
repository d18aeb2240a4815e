package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/AgriCore-api/internal/application/dto"
	"github.com/jhoicas/AgriCore-api/internal/application/usecase"
	"github.com/jhoicas/AgriCore-api/internal/domain"
	"github.com/jhoicas/AgriCore-api/internal/domain/entity"
	"github.com/jhoicas/AgriCore-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria con semántica de claves foráneas
//
// A diferencia de los fakes del paquete crop, este store emula la FK
// stock.item_id -> items.id del esquema real: borrar un ítem mientras
// exista un registro de stock que lo referencia falla, igual que lo haría
// PostgreSQL. Así el orden de borrado dentro de la transacción queda
// cubierto por los tests sin necesidad de una BD viva.
// ──────────────────────────────────────────────────────────────────────────────

type invStore struct {
	mu         sync.Mutex
	items      map[string]*entity.Item
	stocks     map[string]*entity.Stock // clave: itemID|ownerID
	categories map[string]*entity.Category
}

func newInvStore() *invStore {
	return &invStore{
		items:      make(map[string]*entity.Item),
		stocks:     make(map[string]*entity.Stock),
		categories: make(map[string]*entity.Category),
	}
}

func invStockKey(itemID, ownerID string) string { return itemID + "|" + ownerID }

type invSnapshot struct {
	items  map[string]entity.Item
	stocks map[string]entity.Stock
}

func (s *invStore) snapshot() invSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := invSnapshot{
		items:  make(map[string]entity.Item, len(s.items)),
		stocks: make(map[string]entity.Stock, len(s.stocks)),
	}
	for k, v := range s.items {
		snap.items[k] = *v
	}
	for k, v := range s.stocks {
		snap.stocks[k] = *v
	}
	return snap
}

func (s *invStore) restore(snap invSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*entity.Item, len(snap.items))
	for k, v := range snap.items {
		it := v
		s.items[k] = &it
	}
	s.stocks = make(map[string]*entity.Stock, len(snap.stocks))
	for k, v := range snap.stocks {
		st := v
		s.stocks[k] = &st
	}
}

// invItemRepo implementa repository.ItemRepository respetando la FK desde stock.
type invItemRepo struct{ s *invStore }

func (r *invItemRepo) Create(it *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *it
	r.s.items[it.ID] = &cp
	return nil
}

func (r *invItemRepo) GetByID(id string) (*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *invItemRepo) Update(it *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *it
	r.s.items[it.ID] = &cp
	return nil
}

// Delete falla si algún registro de stock todavía referencia al ítem,
// como haría el servidor de BD con la restricción de clave foránea.
func (r *invItemRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, st := range r.s.stocks {
		if st.ItemID == id {
			return fmt.Errorf("delete item: violación de clave foránea stock.item_id (23503)")
		}
	}
	delete(r.s.items, id)
	return nil
}

// invStockRepo implementa repository.StockRepository sobre invStore.
type invStockRepo struct{ s *invStore }

func (r *invStockRepo) Create(st *entity.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *st
	r.s.stocks[invStockKey(st.ItemID, st.OwnerID)] = &cp
	return nil
}

func (r *invStockRepo) GetByItem(itemID, ownerID string) (*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.stocks[invStockKey(itemID, ownerID)]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (r *invStockRepo) Reserve(itemID, ownerID string, amount int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.stocks[invStockKey(itemID, ownerID)]
	if !ok || st.Quantity < amount {
		return domain.ErrInsufficientStock
	}
	st.Quantity -= amount
	return nil
}

func (r *invStockRepo) SetQuantity(itemID, ownerID string, quantity int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.stocks[invStockKey(itemID, ownerID)]
	if !ok {
		return domain.ErrNotFound
	}
	st.Quantity = quantity
	return nil
}

func (r *invStockRepo) ListByOwner(ownerID string) ([]*repository.StockEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*repository.StockEntry
	for _, st := range r.s.stocks {
		if st.OwnerID != ownerID {
			continue
		}
		item := r.s.items[st.ItemID]
		stCp, itCp := *st, *item
		out = append(out, &repository.StockEntry{Stock: &stCp, Item: &itCp})
	}
	return out, nil
}

func (r *invStockRepo) DeleteByItem(itemID, ownerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := invStockKey(itemID, ownerID)
	if _, ok := r.s.stocks[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.stocks, key)
	return nil
}

// invCategoryRepo implementa repository.CategoryRepository sobre invStore.
type invCategoryRepo struct{ s *invStore }

func (r *invCategoryRepo) Create(c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *invCategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *invCategoryRepo) GetByOwnerAndName(ownerID, name string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.OwnerID == ownerID && c.CategoryName == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *invCategoryRepo) ListByOwner(ownerID string) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Category
	for _, c := range r.s.categories {
		if c.OwnerID == ownerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

// invTxRunner serializa transacciones y revierte el store si fn falla.
type invTxRunner struct {
	s    *invStore
	txMu sync.Mutex
}

func (r *invTxRunner) Run(_ context.Context, fn func(
	cropRepo repository.CropRepository,
	stockRepo repository.StockRepository,
	itemRepo repository.ItemRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	snap := r.s.snapshot()
	err := fn(nil, &invStockRepo{r.s}, &invItemRepo{r.s})
	if err != nil {
		r.s.restore(snap)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	invOwner    = "owner-a"
	invItemID   = "item-fertilizante"
	invCatID    = "cat-fertilizantes"
	invStockQty = int64(20)
)

func newItemFixture(t *testing.T) (*usecase.ItemUseCase, *invStore) {
	t.Helper()
	s := newInvStore()
	now := time.Now()
	s.categories[invCatID] = &entity.Category{
		ID: invCatID, OwnerID: invOwner, CategoryName: "Fertilizantes", Unit: entity.UnitKg,
		CreatedAt: now, UpdatedAt: now,
	}
	s.items[invItemID] = &entity.Item{
		ID: invItemID, ItemName: "Urea", CategoryID: invCatID,
		Price: decimal.NewFromInt(40), CreatedAt: now, UpdatedAt: now,
	}
	s.stocks[invStockKey(invItemID, invOwner)] = &entity.Stock{
		ID: "stock-urea", ItemID: invItemID, OwnerID: invOwner, Quantity: invStockQty,
		CreatedAt: now, UpdatedAt: now,
	}
	uc := usecase.NewItemUseCase(
		&invTxRunner{s: s},
		&invItemRepo{s}, &invStockRepo{s}, &invCategoryRepo{s},
	)
	return uc, s
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DeleteItem
// ──────────────────────────────────────────────────────────────────────────────

// Baja normal de un ítem existente con stock: deben desaparecer ambos
// registros. El fake respeta la FK, así que si el orden de borrado dentro
// de la transacción fuera ítem-antes-que-stock este test fallaría.
func TestDeleteItem_EliminaItemYStock(t *testing.T) {
	uc, s := newItemFixture(t)

	err := uc.DeleteItem(context.Background(), invOwner, invItemID)
	require.NoError(t, err)

	s.mu.Lock()
	_, itemExists := s.items[invItemID]
	_, stockExists := s.stocks[invStockKey(invItemID, invOwner)]
	s.mu.Unlock()
	assert.False(t, itemExists, "el ítem debe desaparecer")
	assert.False(t, stockExists, "su stock debe desaparecer con él")
}

// Ítem inexistente → NotFound sin tocar nada.
func TestDeleteItem_Inexistente(t *testing.T) {
	uc, s := newItemFixture(t)

	err := uc.DeleteItem(context.Background(), invOwner, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Len(t, s.items, 1)
	assert.Len(t, s.stocks, 1)
}

// Ítem de otro owner: sin stock propio → NotFound, y el ítem sobrevive.
func TestDeleteItem_DeOtroOwner(t *testing.T) {
	uc, s := newItemFixture(t)

	err := uc.DeleteItem(context.Background(), "otro-owner", invItemID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Contains(t, s.items, invItemID, "el ítem de otro owner no debe borrarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AddItem / UpdateItem
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_CreaItemConStock(t *testing.T) {
	uc, s := newItemFixture(t)

	res, err := uc.AddItem(context.Background(), invOwner, dto.AddItemRequest{
		ItemName:   "Semilla de sorgo",
		CategoryID: invCatID,
		Price:      decimal.NewFromInt(15),
		Quantity:   30,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30), res.Quantity)

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Contains(t, s.items, res.ItemID)
	assert.Contains(t, s.stocks, invStockKey(res.ItemID, invOwner))
}

func TestAddItem_CategoriaAjena(t *testing.T) {
	uc, _ := newItemFixture(t)

	_, err := uc.AddItem(context.Background(), "otro-owner", dto.AddItemRequest{
		ItemName:   "Semilla de sorgo",
		CategoryID: invCatID,
		Price:      decimal.NewFromInt(15),
		Quantity:   30,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"la categoría de otro owner no debe ser visible")
}

func TestUpdateItem_FijaCantidad(t *testing.T) {
	uc, s := newItemFixture(t)

	qty := int64(7)
	res, err := uc.UpdateItem(context.Background(), invOwner, invItemID, dto.UpdateItemRequest{
		Quantity: &qty,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.Quantity)

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Equal(t, int64(7), s.stocks[invStockKey(invItemID, invOwner)].Quantity)
}

func TestUpdateItem_CantidadNegativa(t *testing.T) {
	uc, _ := newItemFixture(t)

	qty := int64(-1)
	_, err := uc.UpdateItem(context.Background(), invOwner, invItemID, dto.UpdateItemRequest{
		Quantity: &qty,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
