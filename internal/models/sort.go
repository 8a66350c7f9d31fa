package models

// Режимы сортировки приходят с фронтенда целыми числами.
// Неизвестное значение всегда приводится к режиму по умолчанию.

// CommentSort режим сортировки комментариев ютубера.
type CommentSort int

const (
	// CommentSortNewest новые сверху (по умолчанию).
	CommentSortNewest CommentSort = 0
	// CommentSortOldest старые сверху.
	CommentSortOldest CommentSort = 1
	// CommentSortBestRated по чистому рейтингу лайков, убывание.
	CommentSortBestRated CommentSort = 2
	// CommentSortWorstRated по чистому рейтингу лайков, возрастание.
	CommentSortWorstRated CommentSort = 3
)

// ParseCommentSort приводит числовое значение к известному режиму.
func ParseCommentSort(v int) CommentSort {
	switch CommentSort(v) {
	case CommentSortOldest, CommentSortBestRated, CommentSortWorstRated:
		return CommentSort(v)
	default:
		return CommentSortNewest
	}
}

// ArticleSort режим сортировки списка статей.
type ArticleSort int

const (
	// ArticleSortNewest новые сверху (по умолчанию).
	ArticleSortNewest ArticleSort = 0
	// ArticleSortBestRated по чистому рейтингу лайков, убывание.
	ArticleSortBestRated ArticleSort = 1
)

// ParseArticleSort приводит числовое значение к известному режиму.
func ParseArticleSort(v int) ArticleSort {
	if ArticleSort(v) == ArticleSortBestRated {
		return ArticleSortBestRated
	}
	return ArticleSortNewest
}

// CategorySort режим сортировки ютуберов внутри категории.
type CategorySort int

const (
	// CategorySortRating по средней оценке, убывание (по умолчанию).
	CategorySortRating CategorySort = 0
	// CategorySortSubscribers по числу подписчиков, убывание.
	CategorySortSubscribers CategorySort = 1
	// CategorySortName по имени, возрастание.
	CategorySortName CategorySort = 2
)

// ParseCategorySort приводит числовое значение к известному режиму.
func ParseCategorySort(v int) CategorySort {
	switch CategorySort(v) {
	case CategorySortSubscribers, CategorySortName:
		return CategorySort(v)
	default:
		return CategorySortRating
	}
}

// ProfileSort режим сортировки оценок и комментариев в профиле пользователя.
type ProfileSort int

const (
	// ProfileSortName по имени ютубера.
	ProfileSortName ProfileSort = 0
	// ProfileSortScoreDesc по оценке, убывание.
	ProfileSortScoreDesc ProfileSort = 1
	// ProfileSortScoreAsc по оценке, возрастание.
	ProfileSortScoreAsc ProfileSort = 2
	// ProfileSortNewest новые сверху (по умолчанию).
	ProfileSortNewest ProfileSort = 3
	// ProfileSortOldest старые сверху.
	ProfileSortOldest ProfileSort = 4
)

// ParseProfileSort приводит числовое значение к известному режиму.
func ParseProfileSort(v int) ProfileSort {
	switch ProfileSort(v) {
	case ProfileSortName, ProfileSortScoreDesc, ProfileSortScoreAsc, ProfileSortOldest:
		return ProfileSort(v)
	default:
		return ProfileSortNewest
	}
}
