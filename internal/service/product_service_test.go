package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"testing"

	"catalog-admin-backend/internal/apperror"
	"catalog-admin-backend/internal/models"
	"catalog-admin-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeStore keeps uploaded objects in memory and records deletes.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Upload(_ context.Context, key string, _ string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return "https://cdn.test/" + key, nil
}

func (f *fakeStore) Delete(_ context.Context, url string) error {
	key := strings.TrimPrefix(url, "https://cdn.test/")
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	f.deleted = append(f.deleted, url)
	return nil
}

func newProductService(db *gorm.DB, store *fakeStore) *ProductService {
	return NewProductService(
		db,
		repository.NewProductRepo(db),
		repository.NewProductImageRepo(db),
		repository.NewCategoryRepo(db),
		repository.NewTagRepo(db),
		repository.NewProviderRepo(db),
		repository.NewAuditRepo(db),
		store,
	)
}

// fileHeaders builds real multipart file headers carrying dummy bytes.
func fileHeaders(t *testing.T, names ...string) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, name := range names {
		fw, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("image-bytes-" + name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["images"]
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func seedProvider(t *testing.T, db *gorm.DB, name string) *models.Provider {
	t.Helper()
	provider := &models.Provider{Name: name}
	require.NoError(t, db.Create(provider).Error)
	return provider
}

func TestProductCreateWithImages(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	svc := newProductService(db, store)
	actor := seedAdmin(t, db, "root@example.com", true)
	category := seedCategory(t, db, "Beverages")
	tag := seedTag(t, db, "organic")

	product, err := svc.Create(context.Background(), actor, ProductInput{
		Name:        "Green Tea",
		Description: "Loose leaf",
		Price:       9.50,
		CategoryIDs: []uint{category.ID},
		TagIDs:      []uint{tag.ID},
	}, fileHeaders(t, "a.jpg", "b.png"), 1, "127.0.0.1")
	require.NoError(t, err)

	require.Len(t, product.Images, 2)
	assert.Equal(t, 0, product.Images[0].DisplayOrder)
	assert.Equal(t, 1, product.Images[1].DisplayOrder)
	assert.False(t, product.Images[0].IsPrimary)
	assert.True(t, product.Images[1].IsPrimary)

	require.NotNil(t, product.ImagePath)
	assert.Equal(t, product.Images[1].ImagePath, *product.ImagePath)

	require.Len(t, product.Categories, 1)
	require.Len(t, product.Tags, 1)
	assert.Len(t, store.objects, 2)

	entry := lastAuditLog(t, db)
	assert.Equal(t, models.ActionCreate, entry.Action)
	assert.Equal(t, "product", entry.Entity)
}

// An out-of-range primary index falls back to the first image.
func TestProductCreatePrimaryIndexClamped(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db, newFakeStore())
	actor := seedAdmin(t, db, "root@example.com", true)

	product, err := svc.Create(context.Background(), actor, ProductInput{
		Name:  "Green Tea",
		Price: 9.50,
	}, fileHeaders(t, "a.jpg", "b.png"), 7, "127.0.0.1")
	require.NoError(t, err)

	require.Len(t, product.Images, 2)
	assert.True(t, product.Images[0].IsPrimary)
}

func TestProductCreateUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db, newFakeStore())
	actor := seedAdmin(t, db, "root@example.com", true)

	_, err := svc.Create(context.Background(), actor, ProductInput{
		Name:        "Green Tea",
		Price:       9.50,
		CategoryIDs: []uint{99},
	}, nil, 0, "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.Status(err))
}

func TestProductUpdateFieldsAndRelations(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db, newFakeStore())
	actor := seedAdmin(t, db, "root@example.com", true)
	category := seedCategory(t, db, "Beverages")
	other := seedCategory(t, db, "Snacks")
	provider := seedProvider(t, db, "Acme Trading")

	product, err := svc.Create(context.Background(), actor, ProductInput{
		Name:        "Green Tea",
		Price:       9.50,
		CategoryIDs: []uint{category.ID},
	}, nil, 0, "127.0.0.1")
	require.NoError(t, err)

	name := "Black Tea"
	price := 11.00
	newCategories := []uint{other.ID}
	providers := []uint{provider.ID}
	updated, err := svc.Update(context.Background(), actor, product.ID, ProductUpdateInput{
		Name:        &name,
		Price:       &price,
		CategoryIDs: &newCategories,
		ProviderIDs: &providers,
	}, nil, false, "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "Black Tea", updated.Name)
	assert.Equal(t, 11.00, updated.Price)
	require.Len(t, updated.Categories, 1)
	assert.Equal(t, other.ID, updated.Categories[0].ID)
	require.Len(t, updated.Providers, 1)
	assert.Equal(t, models.ActionUpdate, lastAuditLog(t, db).Action)
}

func TestProductUpdateAppendsImages(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db, newFakeStore())
	actor := seedAdmin(t, db, "root@example.com", true)

	product, err := svc.Create(context.Background(), actor, ProductInput{
		Name:  "Green Tea",
		Price: 9.50,
	}, fileHeaders(t, "a.jpg"), 0, "127.0.0.1")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), actor, product.ID, ProductUpdateInput{},
		fileHeaders(t, "b.jpg"), false, "127.0.0.1")
	require.NoError(t, err)

	require.Len(t, updated.Images, 2)
	assert.Equal(t, 1, updated.Images[1].DisplayOrder)
	assert.True(t, updated.Images[0].IsPrimary)
	assert.False(t, updated.Images[1].IsPrimary)
}

func TestProductUpdateReplaceImages(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	svc := newProductService(db, store)
	actor := seedAdmin(t, db, "root@example.com", true)

	product, err := svc.Create(context.Background(), actor, ProductInput{
		Name:  "Green Tea",
		Price: 9.50,
	}, fileHeaders(t, "a.jpg", "b.jpg"), 0, "127.0.0.1")
	require.NoError(t, err)
	oldPrimary := *product.ImagePath

	updated, err := svc.Update(context.Background(), actor, product.ID, ProductUpdateInput{},
		fileHeaders(t, "c.jpg"), true, "127.0.0.1")
	require.NoError(t, err)

	require.Len(t, updated.Images, 1)
	assert.True(t, updated.Images[0].IsPrimary)
	assert.Equal(t, 0, updated.Images[0].DisplayOrder)
	require.NotNil(t, updated.ImagePath)
	assert.NotEqual(t, oldPrimary, *updated.ImagePath)
	assert.Len(t, store.deleted, 2)
	assert.Len(t, store.objects, 1)
}

func TestProductAddImagesFirstBecomesPrimary(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db, newFakeStore())
	actor := seedAdmin(t, db, "root@example.com", true)

	product, err := svc.Create(context.Background(), actor, ProductInput{
		Name:  "Green Tea",
		Price: 9.50,
	}, nil, 0, "127.0.0.1")
	require.NoError(t, err)
	assert.Empty(t, product.Images)

	updated, err := svc.AddImages(context.Background(), actor, product.ID,
		fileHeaders(t, "a.jpg", "b.jpg"), "127.0.0.1")
	require.NoError(t, err)

	require.Len(t, updated.Images, 2)
	assert.True(t, updated.Images[0].IsPrimary)
	assert.False(t, updated.Images[1].IsPrimary)
	require.NotNil(t, updated.ImagePath)
	assert.Equal(t, updated.Images[0].ImagePath, *updated.ImagePath)
}

func TestProductAddImagesRejectsInvalidFiles(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db, newFakeStore())
	actor := seedAdmin(t, db, "root@example.com", true)

	product, err := svc.Create(context.Background(), actor, ProductInput{
		Name:  "Green Tea",
		Price: 9.50,
	}, nil, 0, "127.0.0.1")
	require.NoError(t, err)

	_, err = svc.AddImages(context.Background(), actor, product.ID,
		fileHeaders(t, "notes.txt", "clip.gif"), "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.Status(err))
	assert.EqualError(t, err, "No valid image files provided")
}

func TestProductSetPrimaryImage(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db, newFakeStore())
	actor := seedAdmin(t, db, "root@example.com", true)

	product, err := svc.Create(context.Background(), actor, ProductInput{
		Name:  "Green Tea",
		Price: 9.50,
	}, fileHeaders(t, "a.jpg", "b.jpg", "c.jpg"), 0, "127.0.0.1")
	require.NoError(t, err)

	target := product.Images[2]
	updated, err := svc.SetPrimaryImage(context.Background(), actor, product.ID, target.ID, "127.0.0.1")
	require.NoError(t, err)

	primaries := 0
	for _, img := range updated.Images {
		if img.IsPrimary {
			primaries++
			assert.Equal(t, target.ID, img.ID)
		}
	}
	assert.Equal(t, 1, primaries)
	require.NotNil(t, updated.ImagePath)
	assert.Equal(t, target.ImagePath, *updated.ImagePath)
	assert.Equal(t, models.ActionSetPrimaryImage, lastAuditLog(t, db).Action)
}

func TestProductDeletePrimaryImagePromotesNext(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	svc := newProductService(db, store)
	actor := seedAdmin(t, db, "root@example.com", true)

	product, err := svc.Create(context.Background(), actor, ProductInput{
		Name:  "Green Tea",
		Price: 9.50,
	}, fileHeaders(t, "a.jpg", "b.jpg", "c.jpg"), 0, "127.0.0.1")
	require.NoError(t, err)
	primary := product.Images[0]

	err = svc.DeleteImage(context.Background(), actor, product.ID, primary.ID, "127.0.0.1")
	require.NoError(t, err)

	after, err := svc.GetByID(product.ID)
	require.NoError(t, err)
	require.Len(t, after.Images, 2)
	assert.True(t, after.Images[0].IsPrimary)
	require.NotNil(t, after.ImagePath)
	assert.Equal(t, after.Images[0].ImagePath, *after.ImagePath)
	assert.Contains(t, store.deleted, primary.ImagePath)
	assert.Equal(t, models.ActionDeleteImage, lastAuditLog(t, db).Action)
}

func TestProductDeleteLastImageRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db, newFakeStore())
	actor := seedAdmin(t, db, "root@example.com", true)

	product, err := svc.Create(context.Background(), actor, ProductInput{
		Name:  "Green Tea",
		Price: 9.50,
	}, fileHeaders(t, "a.jpg"), 0, "127.0.0.1")
	require.NoError(t, err)

	err = svc.DeleteImage(context.Background(), actor, product.ID, product.Images[0].ID, "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.Status(err))
	assert.EqualError(t, err, "Cannot delete the only image of a product")

	after, err := svc.GetByID(product.ID)
	require.NoError(t, err)
	assert.Len(t, after.Images, 1)
}

func TestProductDeleteRemovesStoredImages(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	svc := newProductService(db, store)
	actor := seedAdmin(t, db, "root@example.com", true)

	product, err := svc.Create(context.Background(), actor, ProductInput{
		Name:  "Green Tea",
		Price: 9.50,
	}, fileHeaders(t, "a.jpg", "b.jpg"), 0, "127.0.0.1")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), actor, product.ID, "127.0.0.1"))

	_, err = svc.GetByID(product.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.Status(err))
	assert.Empty(t, store.objects)

	var imageCount int64
	require.NoError(t, db.Model(&models.ProductImage{}).Count(&imageCount).Error)
	assert.Zero(t, imageCount)
}

func TestProductListFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db, newFakeStore())
	actor := seedAdmin(t, db, "root@example.com", true)
	beverages := seedCategory(t, db, "Beverages")
	snacks := seedCategory(t, db, "Snacks")

	_, err := svc.Create(context.Background(), actor, ProductInput{
		Name: "Green Tea", Price: 9.50, CategoryIDs: []uint{beverages.ID},
	}, nil, 0, "127.0.0.1")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), actor, ProductInput{
		Name: "Potato Chips", Price: 3.20, CategoryIDs: []uint{snacks.ID},
	}, nil, 0, "127.0.0.1")
	require.NoError(t, err)

	products, total, err := svc.ListPaginated(repository.ProductFilter{CategoryIDs: []uint{beverages.ID}}, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "Green Tea", products[0].Name)

	products, total, err = svc.ListPaginated(repository.ProductFilter{Search: "chips"}, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "Potato Chips", products[0].Name)

	_, total, err = svc.ListPaginated(repository.ProductFilter{}, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
