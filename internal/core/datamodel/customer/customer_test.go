package customer_test

import (
	"encoding/json"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/frahmantamala/asaas-go/internal"
	"github.com/frahmantamala/asaas-go/internal/core/datamodel/customer"
)

func TestCustomerDatamodel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Customer Datamodel Suite")
}

var _ = Describe("FromJSON", func() {
	Context("with only the required fields", func() {
		payload := []byte(`{
			"id": "cus_1",
			"dateCreated": "2024-05-01",
			"name": "Roberto",
			"cpfCnpj": "24971563792"
		}`)

		It("decodes and leaves every optional field without a value", func() {
			c, err := customer.FromJSON(payload)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.ID).To(Equal("cus_1"))
			Expect(c.DateCreated.String()).To(Equal("2024-05-01"))
			Expect(c.Name).To(Equal("Roberto"))
			Expect(c.CpfCnpj).To(Equal("24971563792"))

			Expect(c.Email).To(BeNil())
			Expect(c.Phone).To(BeNil())
			Expect(c.MobilePhone).To(BeNil())
			Expect(c.Address).To(BeNil())
			Expect(c.AddressNumber).To(BeNil())
			Expect(c.Complement).To(BeNil())
			Expect(c.Province).To(BeNil())
			Expect(c.PostalCode).To(BeNil())
			Expect(c.ExternalReference).To(BeNil())
			Expect(c.NotificationDisabled).To(BeNil())
			Expect(c.AdditionalEmails).To(BeNil())
			Expect(c.MunicipalInscription).To(BeNil())
			Expect(c.StateInscription).To(BeNil())
			Expect(c.Observations).To(BeNil())
		})
	})

	Context("with optional fields populated", func() {
		payload := []byte(`{
			"id": "cus_2",
			"dateCreated": "2023-11-20",
			"name": "Marcela",
			"cpfCnpj": "12345678901",
			"email": "marcela@example.com",
			"notificationDisabled": true,
			"externalReference": "erp-42"
		}`)

		It("decodes them in place", func() {
			c, err := customer.FromJSON(payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Email).To(HaveValue(Equal("marcela@example.com")))
			Expect(c.NotificationDisabled).To(HaveValue(BeTrue()))
			Expect(c.ExternalReference).To(HaveValue(Equal("erp-42")))
		})

		It("re-encodes the shared fields to the same values", func() {
			c, err := customer.FromJSON(payload)
			Expect(err).NotTo(HaveOccurred())

			encoded, err := json.Marshal(c)
			Expect(err).NotTo(HaveOccurred())

			var original, roundTripped map[string]any
			Expect(json.Unmarshal(payload, &original)).To(Succeed())
			Expect(json.Unmarshal(encoded, &roundTripped)).To(Succeed())
			for _, key := range []string{"id", "dateCreated", "name", "cpfCnpj", "email", "notificationDisabled", "externalReference"} {
				Expect(roundTripped[key]).To(Equal(original[key]), "field %q", key)
			}
		})
	})

	Context("with a required field missing", func() {
		It("fails with a malformed-response error instead of defaulting", func() {
			payload := []byte(`{"id": "cus_3", "dateCreated": "2024-05-01", "cpfCnpj": "1"}`)

			_, err := customer.FromJSON(payload)
			Expect(err).To(HaveOccurred())
			Expect(errors.IsMalformedResponse(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("name"))
		})

		It("treats an explicit null the same as absent", func() {
			payload := []byte(`{"id": "cus_3", "dateCreated": "2024-05-01", "name": null, "cpfCnpj": "1"}`)

			_, err := customer.FromJSON(payload)
			Expect(errors.IsMalformedResponse(err)).To(BeTrue())
		})
	})

	Context("with a malformed date", func() {
		It("fails instead of substituting a zero date", func() {
			payload := []byte(`{"id": "cus_4", "dateCreated": "05/01/2024", "name": "R", "cpfCnpj": "1"}`)

			_, err := customer.FromJSON(payload)
			Expect(errors.IsMalformedResponse(err)).To(BeTrue())
		})
	})

	It("rejects non-object payloads", func() {
		_, err := customer.FromJSON([]byte(`[1,2,3]`))
		Expect(errors.IsMalformedResponse(err)).To(BeTrue())
	})
})

var _ = Describe("FromListJSON", func() {
	It("decodes the data envelope preserving order", func() {
		payload := []byte(`{"data": [
			{"id": "cus_1", "dateCreated": "2024-05-01", "name": "A", "cpfCnpj": "1"},
			{"id": "cus_2", "dateCreated": "2024-05-02", "name": "B", "cpfCnpj": "2"}
		]}`)

		list, err := customer.FromListJSON(payload)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(2))
		Expect(list[0].ID).To(Equal("cus_1"))
		Expect(list[1].ID).To(Equal("cus_2"))
	})

	It("fails when the envelope has no data field", func() {
		_, err := customer.FromListJSON([]byte(`{"totalCount": 0}`))
		Expect(errors.IsMalformedResponse(err)).To(BeTrue())
	})

	It("fails when any element is missing a required field", func() {
		payload := []byte(`{"data": [{"id": "cus_1", "dateCreated": "2024-05-01", "cpfCnpj": "1"}]}`)

		_, err := customer.FromListJSON(payload)
		Expect(errors.IsMalformedResponse(err)).To(BeTrue())
	})
})
