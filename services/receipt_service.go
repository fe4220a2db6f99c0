package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/gambosports/gambo_sports/configs"
	"github.com/gambosports/gambo_sports/database"
	"github.com/gambosports/gambo_sports/models"
	"github.com/google/uuid"
)

// GenerateBookingReceipt renders a PDF receipt for the booking, uploads it to
// Cloudinary and stores the URL on the booking record. Meant to run in a
// goroutine after the booking is created; failures are logged and leave the
// booking without a receipt URL.
func GenerateBookingReceipt(booking models.Booking) {
	htmlData, err := generateReceiptHTML(booking)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt HTML for booking %s: %v", booking.ID, err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt PDF for booking %s: %v", booking.ID, err)
		return
	}

	uploadURL, err := uploadReceipt(pdfBytes, booking.Reference)
	if err != nil {
		log.Printf("🔥 Failed to upload receipt for booking %s: %v", booking.ID, err)
		return
	}

	if err := database.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).Update("receipt_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to save receipt URL for booking %s: %v", booking.ID, err)
		return
	}
	log.Printf("✅ Generated receipt for booking %s", booking.Reference)
}

func generateReceiptHTML(booking models.Booking) (string, error) {
	tmpl, err := template.ParseFiles("templates/receipt.html")
	if err != nil {
		return "", err
	}

	contactEmail := ""
	if booking.ContactEmail != nil {
		contactEmail = *booking.ContactEmail
	}

	data := struct {
		Reference    string
		UserName     string
		GroundName   string
		Date         string
		StartTime    string
		EndTime      string
		Price        string
		Status       string
		ContactEmail string
		IssuedAt     string
	}{
		Reference:    booking.Reference,
		UserName:     booking.UserName,
		GroundName:   booking.GroundName,
		Date:         booking.Date,
		StartTime:    booking.StartTime,
		EndTime:      booking.EndTime,
		Price:        fmt.Sprintf("$%.2f", booking.Price),
		Status:       booking.Status,
		ContactEmail: contactEmail,
		IssuedAt:     time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceipt(fileBytes []byte, reference string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s_%s", reference, uuid.New().String()),
		Folder:       "gambo_sports_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
