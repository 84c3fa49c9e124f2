package integration

import (
	"net/http"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harvestlink/harvestlink/internal/service"
	"github.com/harvestlink/harvestlink/test-integration/storefront/helpers"
)

var customer = map[string]string{
	"first_name": "Maria",
	"last_name":  "Santos",
	"email":      "maria@example.ph",
	"phone":      "09171234567",
	"password":   "pakwan2026",
}

var shippingAddress = map[string]any{
	"recipient_name": "Maria Santos",
	"phone":          "09171234567",
	"street":         "12 Rizal Street",
	"barangay":       "Poblacion",
	"city":           "Tagaytay",
	"province":       "Cavite",
	"postal_code":    "4120",
}

var _ = Describe("Storefront", Label("storefront"), func() {
	var (
		tempDir      string
		configFile   string
		serverHelper *helpers.ServerTestHelper
		configOpts   helpers.ConfigOptions
	)

	BeforeEach(func() {
		tempDir = createTempDir("storefront-test-")
		configOpts = helpers.ConfigOptions{ShippingFeeCents: 5000}
	})

	JustBeforeEach(func() {
		configFile = helpers.WriteConfigYAML(tempDir, configOpts)
		serverHelper = helpers.NewServerTestHelper(ctx, configFile)
		Expect(serverHelper.StartServer()).To(Succeed())
		serverHelper.WaitForServerReady(10 * time.Second)
	})

	AfterEach(func() {
		Expect(serverHelper.StopServer()).To(Succeed())
		cleanupTempDir(tempDir)
	})

	seedAdmin := func() *helpers.Client {
		_, err := serverHelper.Service().EnsureAdmin(ctx, service.RegisterInput{
			FirstName: "Store", LastName: "Admin", Email: "admin@example.ph", Password: "adminpass1",
		})
		Expect(err).NotTo(HaveOccurred())

		admin := serverHelper.NewClient()
		admin.FetchCSRFToken()
		Expect(admin.Login("admin@example.ph", "adminpass1")).To(Equal(http.StatusOK))
		return admin
	}

	createProduct := func(admin *helpers.Client, input map[string]any) service.Product {
		status, body := admin.Do(http.MethodPost, "/api/admin/v1/products", input)
		Expect(status).To(Equal(http.StatusCreated), string(body))
		return helpers.Decode[service.Product](body)
	}

	Context("Checkout", func() {
		It("takes a customer from the catalog to a processed order", func() {
			admin := seedAdmin()
			pechay := createProduct(admin, map[string]any{
				"name":        "Organic Pechay",
				"category":    "Vegetables",
				"price_cents": 4500,
				"unit":        "bundle",
				"stock":       20,
				"farm_name":   "Benguet Highland Farm",
			})

			shopper := serverHelper.NewClient()
			shopper.FetchCSRFToken()

			By("browsing the catalog anonymously")
			status, body := shopper.Do(http.MethodGet, "/api/v1/products?category=Vegetables", nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(helpers.Decode[service.ProductPage](body).Products).To(HaveLen(1))

			By("registering and filling the cart")
			status, body = shopper.Do(http.MethodPost, "/api/v1/auth/register", customer)
			Expect(status).To(Equal(http.StatusCreated), string(body))

			status, body = shopper.Do(http.MethodPost, "/api/v1/cart/items", map[string]any{
				"product_id": pechay.ID, "quantity": 4,
			})
			Expect(status).To(Equal(http.StatusOK), string(body))
			cart := helpers.Decode[service.Cart](body)
			Expect(cart.SubtotalCents).To(Equal(int64(18000)))
			Expect(cart.TotalCents).To(Equal(int64(23000)))

			status, _ = shopper.Do(http.MethodPost, "/api/v1/addresses", shippingAddress)
			Expect(status).To(Equal(http.StatusCreated))

			By("paying with Maya")
			status, body = shopper.Do(http.MethodPost, "/api/v1/checkout", map[string]any{
				"payment_method":    "maya",
				"payment_reference": "9876-5432-1098",
			})
			Expect(status).To(Equal(http.StatusCreated), string(body))
			result := helpers.Decode[service.CheckoutResult](body)
			Expect(result.Transaction.TotalCents).To(Equal(int64(23000)))
			Expect(result.Transaction.PaymentReference).To(Equal("987654321098"))

			status, body = shopper.Do(http.MethodGet, "/api/v1/products/organic-pechay", nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(helpers.Decode[service.Product](body).Stock).To(Equal(16))

			By("processing the order in the back office")
			status, body = admin.Do(http.MethodPut, "/api/admin/v1/transactions/"+result.Transaction.ID.String()+"/status",
				map[string]string{"status": "processing"})
			Expect(status).To(Equal(http.StatusOK), string(body))
			Expect(helpers.Decode[service.Transaction](body).Status).To(Equal(service.OrderStatusProcessing))

			status, body = shopper.Do(http.MethodGet, "/api/v1/orders/"+result.Transaction.ID.String(), nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(helpers.Decode[service.Transaction](body).Status).To(Equal(service.OrderStatusProcessing))

			status, body = shopper.Do(http.MethodGet, "/api/v1/orders/"+result.Transaction.ID.String()+"/invoice", nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(helpers.Decode[service.Invoice](body).AmountCents).To(Equal(int64(23000)))

			By("keeping customers out of the back office")
			status, _ = shopper.Do(http.MethodGet, "/api/admin/v1/dashboard", nil)
			Expect(status).To(Equal(http.StatusForbidden))
		})

		It("rejects unsafe requests without a CSRF token", func() {
			client := serverHelper.NewClient()
			status, _ := client.Do(http.MethodPost, "/api/v1/auth/register", customer)
			Expect(status).To(Equal(http.StatusForbidden))
		})
	})

	Context("Configuration reload", func() {
		It("applies a new shipping fee without a restart", func() {
			admin := seedAdmin()
			rice := createProduct(admin, map[string]any{
				"name":        "Heirloom Rice",
				"category":    "Grains",
				"price_cents": 12000,
				"unit":        "kg",
				"stock":       50,
				"farm_name":   "Ifugao Terraces Coop",
			})

			shopper := serverHelper.NewClient()
			shopper.FetchCSRFToken()
			status, _ := shopper.Do(http.MethodPost, "/api/v1/auth/register", customer)
			Expect(status).To(Equal(http.StatusCreated))
			status, body := shopper.Do(http.MethodPost, "/api/v1/cart/items", map[string]any{
				"product_id": rice.ID, "quantity": 1,
			})
			Expect(status).To(Equal(http.StatusOK))
			Expect(helpers.Decode[service.Cart](body).ShippingFeeCents).To(Equal(int64(5000)))

			configOpts.ShippingFeeCents = 8000
			Eventually(func() int64 {
				helpers.WriteConfigYAML(tempDir, configOpts)
				_, body := shopper.Do(http.MethodGet, "/api/v1/cart", nil)
				return helpers.Decode[service.Cart](body).ShippingFeeCents
			}, 10*time.Second, 200*time.Millisecond).Should(Equal(int64(8000)))
		})

		It("keeps serving the last good configuration when the file is broken", func() {
			Expect(os.WriteFile(configFile, []byte("storage: [not valid"), 0600)).To(Succeed())

			Consistently(func() int {
				status, _ := serverHelper.NewClient().Do(http.MethodGet, "/api/v1/categories", nil)
				return status
			}, time.Second, 100*time.Millisecond).Should(Equal(http.StatusOK))
		})
	})

	Context("Catalog filters", func() {
		BeforeEach(func() {
			configOpts.ExcludeTags = []string{"wholesale"}
		})

		It("hides products with excluded tags from the storefront only", func() {
			admin := seedAdmin()
			createProduct(admin, map[string]any{
				"name": "Calamansi", "category": "Fruits", "price_cents": 9000,
				"unit": "kg", "stock": 30, "farm_name": "Batangas Citrus", "tags": []string{"retail"},
			})
			createProduct(admin, map[string]any{
				"name": "Calamansi Sack", "category": "Fruits", "price_cents": 150000,
				"unit": "sack", "stock": 5, "farm_name": "Batangas Citrus", "tags": []string{"wholesale"},
			})

			status, body := serverHelper.NewClient().Do(http.MethodGet, "/api/v1/products", nil)
			Expect(status).To(Equal(http.StatusOK))
			page := helpers.Decode[service.ProductPage](body)
			Expect(page.Products).To(HaveLen(1))
			Expect(page.Products[0].Name).To(Equal("Calamansi"))

			status, body = admin.Do(http.MethodGet, "/api/admin/v1/products", nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(helpers.Decode[service.ProductPage](body).Products).To(HaveLen(2))
		})
	})

	Context("Rate limiting", func() {
		BeforeEach(func() {
			configOpts.LoginRequests = 2
		})

		It("throttles repeated login attempts", func() {
			client := serverHelper.NewClient()
			client.FetchCSRFToken()

			Expect(client.Login("nobody@example.ph", "wrongpass1")).To(Equal(http.StatusUnauthorized))
			Expect(client.Login("nobody@example.ph", "wrongpass1")).To(Equal(http.StatusUnauthorized))
			Expect(client.Login("nobody@example.ph", "wrongpass1")).To(Equal(http.StatusTooManyRequests))
		})
	})
})
