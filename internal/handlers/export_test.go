package handlers

// FeedCachePrefix exposes feedCachePrefix to the external test package.
const FeedCachePrefix = feedCachePrefix
