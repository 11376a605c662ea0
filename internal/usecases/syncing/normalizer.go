package syncing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
	"github.com/vfg2006/profile-health-api/internal/domain"
	"github.com/vfg2006/profile-health-api/pkg/log"
	"github.com/vfg2006/profile-health-api/pkg/utils"
)

const servicePrefix = "job_type_id:"

// Normalize transforma os resultados brutos da agregação em um
// ProfileSnapshot canônico. Transformação pura, sem I/O: campos opcionais
// ausentes viram vazio ou placeholder, nunca erro. O timestamp de
// sincronização é o único dado do snapshot que não deriva do payload bruto.
func Normalize(results *gbpdomain.FetchResults, now time.Time) *domain.ProfileSnapshot {
	snapshot := &domain.ProfileSnapshot{
		Reviews:   normalizeReviews(results.Reviews),
		Photos:    normalizePhotos(results.Media),
		Posts:     normalizePosts(results.Posts),
		Products:  normalizeProducts(results.Products),
		Services:  normalizeServices(results.Services),
		Questions: normalizeQuestions(results.Questions),
		SyncedAt:  now,
	}

	applyProfileFields(snapshot, results.Location)

	// Contagens são o tamanho das coleções, exceto rating e total de
	// reviews, que carregam os valores reconciliados pelo agregador e podem
	// divergir do tamanho da coleção local
	snapshot.AverageRating = results.Rating.Average
	snapshot.TotalReviews = results.Rating.Count
	if snapshot.TotalReviews == 0 {
		snapshot.TotalReviews = len(snapshot.Reviews)
	}
	snapshot.TotalPhotos = len(snapshot.Photos)
	snapshot.TotalPosts = len(snapshot.Posts)
	snapshot.TotalProducts = len(snapshot.Products)
	snapshot.TotalServices = len(snapshot.Services)
	snapshot.TotalQuestion = len(snapshot.Questions)

	if results.Performance != nil {
		snapshot.Performance = normalizePerformance(results.Performance)
	}

	return snapshot
}

func applyProfileFields(snapshot *domain.ProfileSnapshot, location *gbpdomain.Location) {
	if location == nil {
		return
	}

	snapshot.BusinessName = location.Title
	snapshot.Website = location.WebsiteURI

	if location.Profile != nil {
		snapshot.Description = location.Profile.Description
	}

	if location.PhoneNumbers != nil {
		snapshot.Phone = location.PhoneNumbers.PrimaryPhone
	}

	if location.Address != nil {
		snapshot.Address = &domain.Address{
			Lines:      location.Address.AddressLines,
			Locality:   location.Address.Locality,
			Region:     location.Address.AdministrativeArea,
			PostalCode: location.Address.PostalCode,
			Country:    location.Address.RegionCode,
		}
	}

	if location.Categories != nil {
		if location.Categories.PrimaryCategory != nil {
			snapshot.Category = location.Categories.PrimaryCategory.DisplayName
		}
		for _, category := range location.Categories.AdditionalCategories {
			if category.DisplayName != "" {
				snapshot.Categories = append(snapshot.Categories, category.DisplayName)
			}
		}
	}

	if location.RegularHours != nil {
		for _, period := range location.RegularHours.Periods {
			snapshot.RegularHours = append(snapshot.RegularHours, domain.HoursEntry{
				Day:       period.OpenDay,
				OpenTime:  formatTimeOfDay(period.OpenTime),
				CloseTime: formatTimeOfDay(period.CloseTime),
			})
		}
	}

	for _, attribute := range location.Attributes {
		values := make([]string, 0, len(attribute.Values))
		for _, value := range attribute.Values {
			values = append(values, fmt.Sprintf("%v", value))
		}
		snapshot.Attributes = append(snapshot.Attributes, domain.Attribute{
			ID:     attribute.Name,
			Values: values,
		})
	}
}

func normalizeReviews(reviews []gbpdomain.Review) []domain.Review {
	normalized := make([]domain.Review, 0, len(reviews))

	for _, review := range reviews {
		item := domain.Review{
			ID:      review.ReviewID,
			Rating:  review.StarRating.Value(),
			Comment: review.Comment,
		}
		if item.ID == "" {
			item.ID = review.Name
		}

		if review.Reviewer != nil {
			item.Reviewer = review.Reviewer.DisplayName
			item.ReviewerID = review.Reviewer.ProfilePhotoURL
		}

		item.CreatedAt = parseTimestamp(review.CreateTime)

		if review.Reply != nil {
			item.HasReply = true
			item.ReplyText = review.Reply.Comment
			item.RepliedAt = parseTimestamp(review.Reply.UpdateTime)
		}

		normalized = append(normalized, item)
	}

	return normalized
}

// normalizePhotos achata a categoria aninhada na associação com o perfil para
// um campo filtrável, porque o scoring depende dela
func normalizePhotos(media []gbpdomain.MediaItem) []domain.Photo {
	normalized := make([]domain.Photo, 0, len(media))

	for _, item := range media {
		photo := domain.Photo{
			ID:       item.Name,
			URL:      item.GoogleURL,
			ThumbURL: item.ThumbURL,
		}

		if item.LocationAssociation != nil {
			photo.Category = item.LocationAssociation.Category
		}

		if item.Dimensions != nil {
			photo.WidthPx = item.Dimensions.WidthPixels
			photo.HeightPx = item.Dimensions.HeightPixels
		}

		photo.PublishedAt = parseTimestamp(item.CreateTime)

		normalized = append(normalized, photo)
	}

	return normalized
}

func normalizePosts(posts []gbpdomain.LocalPost) []domain.Post {
	normalized := make([]domain.Post, 0, len(posts))

	for _, post := range posts {
		item := domain.Post{
			ID:        post.Name,
			Summary:   post.Summary,
			Topic:     post.TopicType,
			State:     post.State,
			CreatedAt: parseTimestamp(post.CreateTime),
			UpdatedAt: parseTimestamp(post.UpdateTime),
		}

		if len(post.Media) > 0 {
			item.MediaURL = post.Media[0].GoogleURL
			if item.MediaURL == "" {
				item.MediaURL = post.Media[0].SourceURL
			}
		}

		if post.CallToAction != nil {
			item.CTAURL = post.CallToAction.URL
		}

		normalized = append(normalized, item)
	}

	return normalized
}

func normalizeProducts(products []gbpdomain.Product) []domain.Product {
	normalized := make([]domain.Product, 0, len(products))

	for _, product := range products {
		item := domain.Product{
			ID:          product.Name,
			Name:        product.Title,
			Description: product.Description,
			Category:    product.CategoryName,
			Price:       convertMoney(product.Price),
		}

		if len(product.Media) > 0 {
			item.PhotoURL = product.Media[0].GoogleURL
			if item.PhotoURL == "" {
				item.PhotoURL = product.Media[0].SourceURL
			}
		}

		normalized = append(normalized, item)
	}

	return normalized
}

// normalizeServices aplica as regras de extração de nome em ordem fixa de
// prioridade: identificador estruturado de tipo de serviço, rótulo livre,
// displayName genérico e por fim um placeholder gerado. O payload original é
// preservado em Raw para depuração de drift de schema no upstream.
func normalizeServices(services []gbpdomain.RawServiceItem) []domain.ServiceItem {
	normalized := make([]domain.ServiceItem, 0, len(services))

	for i, raw := range services {
		item := domain.ServiceItem{Raw: raw}

		if structured, ok := raw["structuredServiceItem"].(map[string]any); ok {
			if serviceTypeID, ok := structured["serviceTypeId"].(string); ok && serviceTypeID != "" {
				item.Name = humanizeServiceType(serviceTypeID)
			}
			if description, ok := structured["description"].(string); ok {
				item.Description = description
			}
		}

		if freeForm, ok := raw["freeFormServiceItem"].(map[string]any); ok {
			if label, ok := freeForm["label"].(map[string]any); ok {
				if displayName, ok := label["displayName"].(string); ok && item.Name == "" {
					item.Name = displayName
				}
				if description, ok := label["description"].(string); ok && item.Description == "" {
					item.Description = description
				}
			}
		}

		if item.Name == "" {
			if displayName, ok := raw["displayName"].(string); ok {
				item.Name = displayName
			}
		}

		if item.Name == "" {
			log.L.Debug("syncing: service item without recognizable name shape: ", utils.PrettyJson(raw))
			item.Name = fmt.Sprintf("Service %d", i+1)
		}

		if price, ok := raw["price"].(map[string]any); ok {
			item.Price = convertRawMoney(price)
		}

		normalized = append(normalized, item)
	}

	return normalized
}

func normalizeQuestions(questions []gbpdomain.Question) []domain.Question {
	normalized := make([]domain.Question, 0, len(questions))

	for _, question := range questions {
		item := domain.Question{
			ID:          question.Name,
			Text:        question.Text,
			CreatedAt:   parseTimestamp(question.CreateTime),
			AnswerCount: question.TotalAnswerCount,
		}

		if item.AnswerCount == 0 {
			item.AnswerCount = len(question.TopAnswers)
		}
		item.HasAnswer = item.AnswerCount > 0

		if question.Author != nil {
			item.Author = question.Author.DisplayName
		}

		for _, answer := range question.TopAnswers {
			if answer.Author != nil && answer.Author.Type == "MERCHANT" {
				item.AnsweredByOwner = true
				break
			}
		}

		normalized = append(normalized, item)
	}

	return normalized
}

func normalizePerformance(result *gbpdomain.PerformanceResult) *domain.PerformanceReport {
	report := &domain.PerformanceReport{
		Series: make(map[string][]domain.MetricPoint),
		Totals: make(map[string]int64),
	}

	for metric, values := range result.Series {
		points := make([]domain.MetricPoint, 0, len(values))
		var total int64

		for _, value := range values {
			if value.Date == nil {
				continue
			}

			date := time.Date(value.Date.Year, time.Month(value.Date.Month), value.Date.Day, 0, 0, 0, 0, time.UTC)
			parsed, _ := strconv.ParseInt(value.Value, 10, 64)

			points = append(points, domain.MetricPoint{Date: date, Value: parsed})
			total += parsed

			if report.StartDate.IsZero() || date.Before(report.StartDate) {
				report.StartDate = date
			}
			if date.After(report.EndDate) {
				report.EndDate = date
			}
		}

		report.Series[metric] = points
		report.Totals[metric] = total
	}

	return report
}

// humanizeServiceType converte um identificador de máquina como
// job_type_id:search_engine_optimization em um rótulo legível
func humanizeServiceType(serviceTypeID string) string {
	label := strings.TrimPrefix(serviceTypeID, servicePrefix)
	label = strings.ReplaceAll(label, "_", " ")
	label = strings.ReplaceAll(label, "-", " ")

	words := strings.Fields(label)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}

func convertMoney(money *gbpdomain.MoneyValue) *domain.Money {
	if money == nil {
		return nil
	}

	units, _ := strconv.ParseFloat(money.Units, 64)
	return &domain.Money{
		Currency: money.CurrencyCode,
		Amount:   units + float64(money.Nanos)/1e9,
	}
}

func convertRawMoney(price map[string]any) *domain.Money {
	money := &domain.Money{}

	if currency, ok := price["currencyCode"].(string); ok {
		money.Currency = currency
	}

	switch units := price["units"].(type) {
	case string:
		parsed, _ := strconv.ParseFloat(units, 64)
		money.Amount = parsed
	case float64:
		money.Amount = units
	}

	if nanos, ok := price["nanos"].(float64); ok {
		money.Amount += nanos / 1e9
	}

	return money
}

func formatTimeOfDay(value *gbpdomain.TimeOfDay) string {
	if value == nil {
		return ""
	}

	return fmt.Sprintf("%02d:%02d", value.Hours, value.Minutes)
}

func parseTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}

	return &parsed
}
