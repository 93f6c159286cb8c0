package service

import (
	"testing"

	"nuvita/internal/models"
)

func TestCreatePackageConflict(t *testing.T) {
	svc, _ := newCatalogService(t)

	if err := svc.CreatePackage(&models.Package{Theme: "면역건강구독", Type: "standard", Name: "면역 스탠다드"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := svc.CreatePackage(&models.Package{Theme: "면역건강구독", Type: "standard", Name: "중복"})
	if err != ErrPackageExists {
		t.Errorf("got %v, want ErrPackageExists", err)
	}
}

func TestUpdatePackageCannotStealThemeType(t *testing.T) {
	svc, _ := newCatalogService(t)

	a := &models.Package{Theme: "면역건강구독", Type: "standard", Name: "A"}
	b := &models.Package{Theme: "면역건강구독", Type: "premium", Name: "B"}
	if err := svc.CreatePackage(a); err != nil {
		t.Fatal(err)
	}
	if err := svc.CreatePackage(b); err != nil {
		t.Fatal(err)
	}
	std := "standard"
	if _, err := svc.UpdatePackage(b.ID, PackageUpdate{Type: &std}); err != ErrPackageExists {
		t.Errorf("got %v, want ErrPackageExists", err)
	}
}

func TestProductMutationsRecomputePackageTotals(t *testing.T) {
	svc, _ := newCatalogService(t)

	pkg := &models.Package{Theme: "면역건강구독", Type: "premium", Name: "면역 프리미엄"}
	if err := svc.CreatePackage(pkg); err != nil {
		t.Fatal(err)
	}
	p1 := &models.PackageProduct{PackageID: pkg.ID, ProductName: "비타민C", Price: "25,000원", PointValue: 500, Quantity: 2}
	if err := svc.CreateProduct(p1); err != nil {
		t.Fatalf("create product: %v", err)
	}
	p2 := &models.PackageProduct{PackageID: pkg.ID, ProductName: "오메가3", Price: "30,000원", PointValue: 300, Quantity: 1}
	if err := svc.CreateProduct(p2); err != nil {
		t.Fatalf("create product: %v", err)
	}

	got, err := svc.GetPackage(pkg.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalPrice != "80,000원" {
		t.Errorf("TotalPrice = %q, want \"80,000원\"", got.TotalPrice)
	}
	if got.TotalPoints != 1300 {
		t.Errorf("TotalPoints = %d, want 1300", got.TotalPoints)
	}

	totals, err := svc.Totals(pkg.ID)
	if err != nil {
		t.Fatal(err)
	}
	if totals.SubscriptionPrice != 72000 {
		t.Errorf("SubscriptionPrice = %d, want 72000", totals.SubscriptionPrice)
	}

	// Deleting a product must refresh the cache too.
	if err := svc.DeleteProduct(p1.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	got, _ = svc.GetPackage(pkg.ID)
	if got.TotalPrice != "30,000원" || got.TotalPoints != 300 {
		t.Errorf("after delete: price=%q points=%d", got.TotalPrice, got.TotalPoints)
	}
}

func TestUpdateProductQuantityValidation(t *testing.T) {
	svc, _ := newCatalogService(t)

	pkg := &models.Package{Theme: "다이어트구독", Type: "standard", Name: "다이어트"}
	if err := svc.CreatePackage(pkg); err != nil {
		t.Fatal(err)
	}
	p := &models.PackageProduct{PackageID: pkg.ID, ProductName: "가르시니아", Price: "20,000원", Quantity: 1}
	if err := svc.CreateProduct(p); err != nil {
		t.Fatal(err)
	}
	for _, q := range []int{0, -1, -100} {
		if _, err := svc.UpdateProductQuantity(p.ID, q); err != ErrInvalidQuantity {
			t.Errorf("quantity %d: got %v, want ErrInvalidQuantity", q, err)
		}
	}
	updated, err := svc.UpdateProductQuantity(p.ID, 3)
	if err != nil {
		t.Fatalf("valid quantity: %v", err)
	}
	if updated.Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", updated.Quantity)
	}
	got, _ := svc.GetPackage(pkg.ID)
	if got.TotalPrice != "60,000원" {
		t.Errorf("TotalPrice = %q, want \"60,000원\"", got.TotalPrice)
	}
}

func TestCreateProductRequiresPackage(t *testing.T) {
	svc, _ := newCatalogService(t)
	err := svc.CreateProduct(&models.PackageProduct{PackageID: 999, ProductName: "유령", Price: "1,000원"})
	if err != ErrPackageNotFound {
		t.Errorf("got %v, want ErrPackageNotFound", err)
	}
}

func TestDeletePackageCascades(t *testing.T) {
	svc, _ := newCatalogService(t)

	pkg := &models.Package{Theme: "활력건강구독", Type: "standard", Name: "활력"}
	if err := svc.CreatePackage(pkg); err != nil {
		t.Fatal(err)
	}
	if err := svc.CreateProduct(&models.PackageProduct{PackageID: pkg.ID, ProductName: "홍삼", Price: "40,000원", Quantity: 1}); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeletePackage(pkg.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetPackage(pkg.ID); err != ErrPackageNotFound {
		t.Errorf("package lookup after delete: got %v, want ErrPackageNotFound", err)
	}
	if _, err := svc.ListProducts(pkg.ID); err != ErrPackageNotFound {
		t.Errorf("product listing after delete: got %v, want ErrPackageNotFound", err)
	}
}
