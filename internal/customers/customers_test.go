package customers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/asaas-go/internal"
	"github.com/frahmantamala/asaas-go/internal/asaas"
	"github.com/frahmantamala/asaas-go/internal/customers"
)

func TestCustomers(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Customers Service Suite")
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

var _ = Describe("Service", func() {
	var (
		server      *httptest.Server
		service     *customers.Service
		lastRequest *http.Request
		lastBody    []byte
		status      int
		response    string
	)

	BeforeEach(func() {
		status = http.StatusOK
		response = `{}`
		lastRequest = nil
		lastBody = nil

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastRequest = r
			lastBody, _ = io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			w.Write([]byte(response))
		}))

		cfg := internal.APIConfig{
			AccessToken:   "test-token",
			Production:    true,
			ProductionURL: server.URL,
		}
		service = customers.NewService(asaas.NewClient(cfg, nil), nil)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("Create", func() {
		It("posts the payload and decodes the created record", func() {
			response = `{
				"id": "cus_1",
				"dateCreated": "2024-05-01",
				"name": "Roberto",
				"cpfCnpj": "24971563792"
			}`

			result, err := service.Create(context.Background(), customers.CreateCustomerRequest{
				Name:    "Roberto",
				CpfCnpj: "24971563792",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(lastRequest.Method).To(Equal(http.MethodPost))
			Expect(lastRequest.URL.Path).To(Equal("/api/v3/customers"))
			Expect(string(lastBody)).To(MatchJSON(`{"name": "Roberto", "cpfCnpj": "24971563792"}`))

			Expect(result.ID).To(Equal("cus_1"))
			Expect(result.DateCreated.String()).To(Equal("2024-05-01"))
			Expect(result.Name).To(Equal("Roberto"))
			Expect(result.CpfCnpj).To(Equal("24971563792"))
			Expect(result.Email).To(BeNil())
			Expect(result.Phone).To(BeNil())
			Expect(result.ExternalReference).To(BeNil())
		})

		It("omits optional fields that were not set", func() {
			response = `{"id":"cus_2","dateCreated":"2024-05-01","name":"Ana","cpfCnpj":"111"}`

			_, err := service.Create(context.Background(), customers.CreateCustomerRequest{
				Name:    "Ana",
				CpfCnpj: "111",
				Email:   strPtr("ana@example.com"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(string(lastBody)).To(MatchJSON(`{
				"name": "Ana",
				"cpfCnpj": "111",
				"email": "ana@example.com"
			}`))
		})

		It("rejects a request without a name before touching the network", func() {
			_, err := service.Create(context.Background(), customers.CreateCustomerRequest{
				CpfCnpj: "24971563792",
			})

			Expect(err).To(HaveOccurred())
			Expect(internal.HasCode(err, internal.ErrCodeValidationFailed)).To(BeTrue())
			Expect(lastRequest).To(BeNil())
		})

		It("rejects a request without a cpfCnpj", func() {
			_, err := service.Create(context.Background(), customers.CreateCustomerRequest{
				Name: "Roberto",
			})

			Expect(internal.HasCode(err, internal.ErrCodeValidationFailed)).To(BeTrue())
		})

		It("propagates API errors from the gateway", func() {
			status = http.StatusBadRequest
			response = `{"errors":[{"code":"invalid_name","description":"Informe um nome valido"}]}`

			_, err := service.Create(context.Background(), customers.CreateCustomerRequest{
				Name:    "x",
				CpfCnpj: "24971563792",
			})

			Expect(internal.HasCode(err, internal.ErrCodeInvalidName)).To(BeTrue())
		})
	})

	Describe("List", func() {
		It("sends only the filters that were set", func() {
			response = `{"data": []}`

			_, err := service.List(context.Background(), customers.ListOptions{
				Name:   strPtr("Roberto"),
				Offset: intPtr(20),
			})
			Expect(err).NotTo(HaveOccurred())

			query := lastRequest.URL.Query()
			Expect(query.Get("name")).To(Equal("Roberto"))
			Expect(query.Get("offset")).To(Equal("20"))
			Expect(query.Has("email")).To(BeFalse())
			Expect(query.Has("cpfCnpj")).To(BeFalse())
			Expect(query.Has("limit")).To(BeFalse())
		})

		It("decodes the data envelope preserving order", func() {
			response = `{"data": [
				{"id":"cus_1","dateCreated":"2024-05-01","name":"A","cpfCnpj":"1"},
				{"id":"cus_2","dateCreated":"2024-05-02","name":"B","cpfCnpj":"2"}
			]}`

			result, err := service.List(context.Background(), customers.ListOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(2))
			Expect(result[0].ID).To(Equal("cus_1"))
			Expect(result[1].ID).To(Equal("cus_2"))
		})

		It("fails when an element is missing a required field", func() {
			response = `{"data": [{"id":"cus_1","dateCreated":"2024-05-01","name":"A"}]}`

			_, err := service.List(context.Background(), customers.ListOptions{})
			Expect(internal.IsMalformedResponse(err)).To(BeTrue())
		})
	})

	Describe("Get", func() {
		It("fetches a customer by id", func() {
			response = `{"id":"cus_9","dateCreated":"2024-05-01","name":"C","cpfCnpj":"9","email":"c@example.com"}`

			result, err := service.Get(context.Background(), "cus_9")
			Expect(err).NotTo(HaveOccurred())
			Expect(lastRequest.URL.Path).To(Equal("/api/v3/customers/cus_9"))
			Expect(result.ID).To(Equal("cus_9"))
			Expect(result.Email).To(HaveValue(Equal("c@example.com")))
		})

		It("returns not-found for unknown ids", func() {
			status = http.StatusNotFound

			_, err := service.Get(context.Background(), "cus_missing")
			Expect(internal.IsNotFound(err)).To(BeTrue())
		})
	})
})
