package sqlinline

const QInsertGeneratedImage = `--sql b526f33e-721b-489d-a67f-6e6964b5ea4c
insert into generated_images(
  id,
  generation_id,
  image_url,
  is_public,
  created_at
) values (
  gen_random_uuid(),
  $1::uuid,
  $2::text,
  false,
  now()
) returning id, created_at;
`

const QSelectImagesForGeneration = `--sql da5e454c-7e20-4a36-8def-98ad7305b51a
select id, generation_id, image_url, is_public, created_at
from generated_images
where generation_id = $1::uuid
order by created_at asc;
`

const QSelectImageURLsForGeneration = `--sql f19abf3c-ef71-48fa-9224-1862c7a9dc78
select image_url
from generated_images
where generation_id = $1::uuid;
`

const QUpdateImageVisibilityForUser = `--sql 6b435d0a-d77c-442c-8ba7-4ddaa9f3cfa5
update generated_images i
set is_public = $3::bool
from generations g
where i.id = $1::uuid
  and g.id = i.generation_id
  and g.user_id = $2::text
returning i.id, i.generation_id, i.image_url, i.is_public, i.created_at;
`

const QSelectPublicGallery = `--sql cc9e0ed9-7425-4ed0-a476-4b08f2ca1d86
select
  i.id,
  i.generation_id,
  i.image_url,
  i.created_at,
  g.user_id,
  g.prompt,
  g.settings
from generated_images i
join generations g on g.id = i.generation_id
where i.is_public = true
order by i.created_at desc
limit $1::int offset $2::int;
`

const QCountPublicGallery = `--sql de3e6ca3-9f18-4a1f-a8e5-d2c9ab748b66
select count(*)
from generated_images
where is_public = true;
`
